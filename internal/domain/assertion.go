package domain

// Field is one key/value pair of an assertion record.
type Field struct {
	Key   string
	Value string
}

// AssertionRecord is one checked condition. Field order is the order the
// plugin emitted them in and is kept for display.
type AssertionRecord []Field

// AssertionReport groups the assertions observed while running one test.
type AssertionReport struct {
	NodeID     string
	Assertions []AssertionRecord
}
