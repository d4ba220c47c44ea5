// Package str provides standalone, framework-agnostic string transforms:
// case conversion between the common programming naming conventions,
// truncation, slug generation, tag stripping, and HTML entity escaping.
//
// # Case conversion
//
// All case converters share a single word-splitting step that understands
// whitespace, hyphens, underscores, and camel boundaries (including acronym
// runs such as "HTTPServer"):
//
//	str.SnakeCase("getHTTPResponse") // → "get_http_response"
//	str.CamelCase("hello-world")     // → "helloWorld"
//	str.ConstantCase("helloWorld")   // → "HELLO_WORLD"
//
// # Text helpers
//
//	str.Truncate("hello world", 8)         // → "hello..."
//	str.Slugify("Crème Brûlée!")           // → "creme-brulee"
//	str.EscapeHTML(`<a href="x">&</a>`)    // → "&lt;a href=&quot;x&quot;&gt;&amp;&lt;/a&gt;"
//
// EscapeHTML and UnescapeHTML are exact mutual inverses over the five
// reserved characters & < > " '.
package str
