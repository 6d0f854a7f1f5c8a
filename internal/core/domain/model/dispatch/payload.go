package dispatch

// Form field names and the declared media type of the resume attachment,
// as expected by the intake endpoint.
const (
	FieldResume         = "resume"
	FieldWhatsAppNumber = "whatsapp_number"
	FieldFeedURL        = "rss_feed_url"
	FieldFeedList       = "rss_feeds"

	ResumeContentType = "application/pdf"
)

// Payload is the assembled multipart delivery body: the resume attachment
// plus the text form fields. The feed field name differs by call path: the
// scheduled dispatcher sends a single URL under rss_feed_url, while the
// interactive send path serializes all feeds as a JSON array under rss_feeds.
// The payload therefore carries the field name alongside its value.
type Payload struct {
	fileName       string
	content        []byte
	whatsappNumber string
	feedFieldName  string
	feedFieldValue string
}

// NewPayload builds a payload with explicit feed field naming. Assemblers in
// the services package are the intended callers.
func NewPayload(fileName string, content []byte, whatsappNumber, feedFieldName, feedFieldValue string) Payload {
	return Payload{
		fileName:       fileName,
		content:        content,
		whatsappNumber: whatsappNumber,
		feedFieldName:  feedFieldName,
		feedFieldValue: feedFieldValue,
	}
}

// FileName returns the attachment filename (the resume's original name).
func (p Payload) FileName() string {
	return p.fileName
}

// Content returns the resume binary.
func (p Payload) Content() []byte {
	return p.content
}

// WhatsAppNumber returns the whatsapp_number field value; may be empty.
func (p Payload) WhatsAppNumber() string {
	return p.whatsappNumber
}

// FeedFieldName returns the name of the feed form field.
func (p Payload) FeedFieldName() string {
	return p.feedFieldName
}

// FeedFieldValue returns the feed form field value; may be empty.
func (p Payload) FeedFieldValue() string {
	return p.feedFieldValue
}
