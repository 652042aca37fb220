package names

type Seconds = float64
type Milliseconds = int64

type Url = string
type Bytes = int
type UUIDv4 = string

// like 01000001:3
type FreqTableText = string
