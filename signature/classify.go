package signature

import "strconv"

// ErrorData is the resolved data of a signature that could not be found.
const ErrorData = "ERROR"

// Kind is the bucket a resolved data string falls into.
type Kind int

const (
	KindAddress Kind = iota
	KindError
	KindTag
)

func (k Kind) String() string {
	switch k {
	case KindAddress:
		return "address"
	case KindError:
		return "error"
	default:
		return "tag"
	}
}

// Value is a classified resolved data string. Address is set for
// KindAddress, Tag for KindTag.
type Value struct {
	Kind    Kind
	Address uint64
	Tag     string
}

// Classify buckets data, checking in order:
//   - exactly "ERROR" is an error
//   - a non-empty run of hex digits that fits 64 bits is an address
//   - anything else, the empty string included, is an opaque tag
func Classify(data string) Value {
	if data == ErrorData {
		return Value{Kind: KindError}
	}
	if isHex(data) {
		if addr, err := strconv.ParseUint(data, 16, 64); err == nil {
			return Value{Kind: KindAddress, Address: addr}
		}
	}
	return Value{Kind: KindTag, Tag: data}
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
