package common

type CodecLimits = struct {
	MaxInputBytes  int64 `yaml:"max-input-bytes" koanf:"max-input-bytes" json:"max-input-bytes"`
	MaxSourceBytes int64 `yaml:"max-source-bytes" koanf:"max-source-bytes" json:"max-source-bytes"`

	AllowFileSources bool     `yaml:"allow-file-sources" koanf:"allow-file-sources" json:"allow-file-sources"`
	FileRoots        []string `yaml:"file-roots" koanf:"file-roots" json:"file-roots"`
}
