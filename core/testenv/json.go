package testenv

import "encoding/json"

// FromJSON unmarshals from JSON string.
// Error causes panic.
func FromJSON(j string, ptr any) {
	e := json.Unmarshal([]byte(j), ptr)
	if e != nil {
		panic(e)
	}
}
