package tendril

import "bytes"

// Equal reports whether t and other hold identical content. It does not
// care whether either is inline, owned, or shared, or whether they
// reference the same block — only the bytes are compared.
func Equal(t, other *Tendril) bool {
	return bytes.Equal(t.Bytes(), other.Bytes())
}
