package broker

// Config of the upload event stream. URI comes from BROKER_URI; an empty URI
// disables publishing.
type Config struct {
	URI        string
	StreamName string `yaml:"stream_name"`
	GroupName  string `yaml:"group_name"`
	MaxLen     int64  `yaml:"max_len"`
}

type PublisherConfig struct {
	Timeout int `yaml:"timeout_in_ms"`
}
