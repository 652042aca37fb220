package common

import "github.com/sbilalh/Binary-Compression/utils/general/names"

type JobStatus string

const (
	Success   JobStatus = "success"   // accepted, job finished
	Fail      JobStatus = "fail"      // accepted, upstream source failed
	Timeout   JobStatus = "timeout"   // accepted, deadline exceeded
	Intercept JobStatus = "intercept" // accepted, request intercepted
	Reject    JobStatus = "reject"    // refused, e.g. rate limit or bad input
	Error     JobStatus = "error"     // internal error
)

type JobKind string

const (
	EncodeJob JobKind = "encode"
	DecodeJob JobKind = "decode"
)

type SourceProfile = struct {
	Scheme   string             `json:"scheme"`
	Url      names.Url          `json:"url,omitempty"`
	Size     names.Bytes        `json:"size"`
	Duration names.Milliseconds `json:"duration"`
	Error    string             `json:"error,omitempty"`
}

// One codec job per client request.
type JobProfile = struct {
	ID     names.UUIDv4 `json:"id"`
	Kind   JobKind      `json:"kind"`
	Href   names.Url    `json:"href"`   // full request URL
	Method string       `json:"method"` // HTTP method
	IP     string       `json:"ip"`

	Status JobStatus `json:"status"`

	AppID      uint64 `json:"appId"`
	ArtifactID string `json:"artifactId,omitempty"`

	// resolved input source, when the body names one
	Source *SourceProfile `json:"source,omitempty"`

	OriginalSize names.Bytes `json:"originalSize"`
	PackedSize   names.Bytes `json:"packedSize"`
	Ratio        float64     `json:"ratio,omitempty"`
	Cached       bool        `json:"cached"`

	Starttime names.Milliseconds `json:"startTime"` // when the request was accepted
	Endtime   names.Milliseconds `json:"endTime"`   // when the job finished
}
