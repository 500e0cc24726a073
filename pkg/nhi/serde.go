package nhi

import "gopkg.in/yaml.v3"

// Text (un)marshalling lets JSON, YAML and text encoders carry an NHI as
// its plain string form. Decoding re-runs Parse, so no invalid value can
// be constructed through deserialization.

// MarshalText encodes the NHI as its normalized uppercase string.
func (n NHI) MarshalText() ([]byte, error) {
	return []byte(n), nil
}

// UnmarshalText parses and validates the incoming text. The stored
// value is the normalized form, so lowercase wire data round-trips to
// uppercase.
func (n *NHI) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// UnmarshalYAML exists because yaml.v3 does not consult
// encoding.TextUnmarshaler on decode; without it a YAML document could
// smuggle an unvalidated string into an NHI field.
func (n *NHI) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return n.UnmarshalText([]byte(raw))
}
