package agenda

import "encoding/json"

// RawRecord is one agenda entry exactly as published in the feed document.
// Field names are part of the wire format and must not be renamed.
type RawRecord struct {
	Date     string `json:"date"`
	Due      string `json:"due"`
	Duration string `json:"duration,omitempty"`
	Type     string `json:"type,omitempty"`
	Sub      string `json:"sub,omitempty"`
	Title    string `json:"title,omitempty"`
	Info     string `json:"info,omitempty"`
	Text     string `json:"text,omitempty"`
	Color    string `json:"color,omitempty"`
	NoClick  bool   `json:"-"`
}

// UnmarshalJSON accepts both published spellings of the no-click marker.
func (r *RawRecord) UnmarshalJSON(data []byte) error {
	type alias RawRecord
	aux := struct {
		*alias
		NoClickKebab bool `json:"no-click"`
		NoClickCamel bool `json:"noClick"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.NoClick = aux.NoClickKebab || aux.NoClickCamel
	return nil
}

// Feed is the agenda feed document.
type Feed struct {
	Items []RawRecord `json:"items"`
}
