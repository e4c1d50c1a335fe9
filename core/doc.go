// Package core defines the shared types used across sblog.
//
// It provides the Level type for severity filtering, the Record type
// that represents a single log event, and the Param type for named
// message parameters.
//
// Levels are plain values ordered by their numeric severity. The
// predefined levels, from lowest to highest, are All, Fine, Config,
// Info, Warning, Severe and Off. Custom levels are created with
// NewLevel and interleave with the predefined ones by value.
//
// Param values are rendered to strings when the Param is created, not
// when the record is formatted. A nil value renders as "null".
//
// Clock abstracts the timestamp source. SystemClock reads time.Now on
// every call; CoarseClock reads a value cached by a background ticker.
package core
