package models

// FlexNumber accepts either a JSON number or a numeric string and keeps
// the raw textual form. Clients send class_number both ways, and the
// linking reconciliation compares it by its string value.
type FlexNumber string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "null" {
		s = ""
	}
	*f = FlexNumber(s)
	return nil
}

// String returns the raw textual value.
func (f FlexNumber) String() string { return string(f) }
