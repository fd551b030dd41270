package epub

// DefaultCSS is the base stylesheet shipped with every package. Callout and
// embed blocks carry inline styles for reader compatibility; this covers
// the general typography.
const DefaultCSS = `/* Base styles */
body {
    font-family: Georgia, serif;
    line-height: 1.6;
    margin: 1em;
    color: #333;
}

h1, h2, h3, h4, h5, h6 {
    font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif;
    color: #1a1a1a;
    margin-top: 1.5em;
    margin-bottom: 0.5em;
}

h1 { font-size: 1.8em; border-bottom: 1px solid #eee; padding-bottom: 0.3em; }
h2 { font-size: 1.5em; }
h3 { font-size: 1.3em; }

/* Code */
pre, code {
    font-family: "Menlo", "Monaco", "Courier New", monospace;
    font-size: 0.9em;
}

code {
    background-color: #f6f8fa;
    padding: 0.2em 0.4em;
    border-radius: 3px;
}

pre {
    background-color: #f6f8fa;
    padding: 1em;
    overflow-x: auto;
    border-radius: 6px;
    border: 1px solid #e1e4e8;
}

pre code {
    background: none;
    padding: 0;
}

/* Tables */
table {
    border-collapse: collapse;
    width: 100%;
    margin: 1em 0;
}

th, td {
    border: 1px solid #ddd;
    padding: 8px 12px;
    text-align: left;
}

th {
    background-color: #f6f8fa;
    font-weight: bold;
}

/* Blockquotes */
blockquote {
    border-left: 4px solid #ddd;
    margin: 1em 0;
    padding: 0.5em 1em;
    color: #666;
    background-color: #f9f9f9;
}

/* Links */
a {
    color: #0366d6;
    text-decoration: none;
}

/* Non-resolving wikilinks */
.wikilink {
    color: #0366d6;
    font-style: italic;
}

/* Images */
img {
    max-width: 100%;
    height: auto;
    display: block;
    margin: 1em auto;
}

/* Lists */
ul, ol {
    margin: 1em 0;
    padding-left: 2em;
}

/* Horizontal rules */
hr {
    border: none;
    border-top: 1px solid #eee;
    margin: 2em 0;
}

/* Highlights (==text== syntax) */
mark {
    background-color: #fff3a3;
    padding: 0.1em 0.2em;
    border-radius: 2px;
}

/* Footnotes */
.footnote {
    font-size: 0.85em;
}
`
