package wikicrawl

import "context"

// Progress is a snapshot of a crawl run after some number of topics.
type Progress struct {
	Processed    int      `json:"processed"`
	Total        int      `json:"total"`
	Succeeded    int      `json:"succeeded"`
	Failed       int      `json:"failed"`
	FailedTopics []string `json:"failedTopics"`
}

// ProgressWriter persists progress snapshots between topics. The snapshot
// is rewritten after every topic, so a partially completed run can be
// inspected while it is still going.
type ProgressWriter interface {
	WriteProgress(ctx context.Context, progress *Progress) error
}
