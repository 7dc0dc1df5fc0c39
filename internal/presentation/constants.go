package presentation

const (
	ReasonTag         = "X-Reason"
	DeprecationTag    = "Deprecation"
	FileField         = "file"
	PageParam         = "page"
	LimitParam        = "limit"
	RangeHeader       = "Range"
	ContentRangeTag   = "Content-Range"
	AcceptRangesTag   = "Accept-Ranges"
	CacheControlTag   = "Cache-Control"
	MediaCacheControl = "public, max-age=3600"
	MediaAllowMethods = "GET, HEAD, OPTIONS"
	MediaAllowHeaders = "Range, Content-Type"
	MediaCORSMaxAge   = "86400"
)
