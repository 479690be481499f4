package live

// Frame is pushed to the browser after every render pass.
type Frame struct {
	Seq  uint64 `json:"seq"`
	HTML string `json:"html"`
}

// EventFrame is an event reported by the browser. Value and Checked are nil
// when the element has no such state.
type EventFrame struct {
	Seq     uint64  `json:"seq"`
	HID     string  `json:"hid"`
	Type    string  `json:"type"`
	Value   *string `json:"value,omitempty"`
	Checked *bool   `json:"checked,omitempty"`
	Confirm bool    `json:"confirm,omitempty"`
}
