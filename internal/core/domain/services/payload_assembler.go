package services

import (
	"encoding/json"

	"resumeflow/internal/core/domain/model/dispatch"
)

// PayloadAssembler shapes a user's resolved assets into the delivery payload.
// It is a pure function over its inputs: no I/O and no failure modes, since
// malformed inputs are excluded upstream by the asset resolver.
//
// Two assembly modes exist, mirroring the two delivery paths:
//   - Assemble: the scheduled dispatcher's form, with a single feed URL
//     under rss_feed_url (the first feed by fetch order, empty when none)
//   - AssembleWithFeedList: the interactive send form, with every feed URL
//     serialized as a JSON array under rss_feeds
type PayloadAssembler struct{}

// NewPayloadAssembler creates a PayloadAssembler.
func NewPayloadAssembler() PayloadAssembler {
	return PayloadAssembler{}
}

// Assemble builds the scheduled-dispatch payload: the resume attachment under
// its original file name, the whatsapp_number field, and rss_feed_url holding
// the first feed URL or the empty string.
func (PayloadAssembler) Assemble(assets dispatch.ResolvedAssets) dispatch.Payload {
	return dispatch.NewPayload(
		assets.Resume().FileName(),
		assets.Content(),
		assets.WhatsAppNumber(),
		dispatch.FieldFeedURL,
		assets.FirstFeedURL(),
	)
}

// AssembleWithFeedList builds the interactive-send payload: identical to
// Assemble except all feed URLs are JSON-encoded into the rss_feeds field.
// An empty feed list encodes as "[]".
func (PayloadAssembler) AssembleWithFeedList(assets dispatch.ResolvedAssets) dispatch.Payload {
	urls := assets.FeedURLs()
	if urls == nil {
		urls = []string{}
	}

	// Marshalling a string slice cannot fail.
	encoded, _ := json.Marshal(urls)

	return dispatch.NewPayload(
		assets.Resume().FileName(),
		assets.Content(),
		assets.WhatsAppNumber(),
		dispatch.FieldFeedList,
		string(encoded),
	)
}
