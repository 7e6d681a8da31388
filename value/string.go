package value

import (
	"strconv"
	"unicode/utf16"
)

// Strings are indexed by UTF-16 code unit, as in JavaScript. A lone
// surrogate read through StringGet decodes to U+FFFD.

// StringLen returns the length of s in UTF-16 code units.
func StringLen(s String) int {
	n := 0
	for _, r := range string(s) {
		n += utf16.RuneLen(r)
	}
	return n
}

// StringKeys returns the index keys "0" … "len-1" of s.
func StringKeys(s String) []string {
	keys := make([]string, StringLen(s))
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}

// StringGet reads the code unit at the index named by key, or the length
// for "length". Other keys read as Undefined.
func StringGet(s String, key string) Value {
	if key == "length" {
		return Num(StringLen(s))
	}
	i, ok := arrayIndex(key)
	if !ok {
		return Undefined
	}
	units := utf16.Encode([]rune(string(s)))
	if i >= len(units) {
		return Undefined
	}
	return String(string(utf16.Decode(units[i : i+1])))
}

// SliceFrom returns s[start:] measured in UTF-16 code units. A negative
// start counts back from the end and is clamped to 0; a start past the end
// yields "".
func SliceFrom(s String, start int) String {
	units := utf16.Encode([]rune(string(s)))
	n := len(units)
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if start >= n {
		return ""
	}
	if start == 0 {
		return s
	}
	return String(string(utf16.Decode(units[start:])))
}
