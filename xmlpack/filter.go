package xmlpack

import "github.com/dlclark/regexp2"

// Community marker packs are full of XML that no strict parser accepts.
// The filter pass below rewrites three constructs: bare ampersands become
// "&amp;", NUL bytes are removed, and one "<" inside a double-quoted
// attribute value becomes "&lt;". It does not repair misquoted attribute
// values or strip other control bytes. Files that are already well-formed
// are left unchanged (spec section 4.2's "permissive XML preprocessing"
// must be a no-op on well-formed input).

var (
	bareAmpersand  = regexp2.MustCompile(`&(?!amp;|lt;|gt;|quot;|apos;|#\d+;|#x[0-9a-fA-F]+;)`, regexp2.None)
	nulByte        = regexp2.MustCompile(`\x00`, regexp2.None)
	unescapedLtInAttr = regexp2.MustCompile(`="([^"]*)<([^"]*)"`, regexp2.None)
)

// filterXML runs the permissive preprocessing pass over raw pack XML
// bytes. It is conservative: every rewrite targets a specific
// known-invalid construct rather than reformatting the document, so
// already-valid XML round-trips unchanged.
func filterXML(data []byte) []byte {
	s := string(data)

	if out, err := bareAmpersand.Replace(s, "&amp;", -1, -1); err == nil {
		s = out
	}
	if out, err := nulByte.Replace(s, "", -1, -1); err == nil {
		s = out
	}
	if out, err := unescapedLtInAttr.Replace(s, `="$1&lt;$2"`, -1, -1); err == nil {
		s = out
	}

	return []byte(s)
}
