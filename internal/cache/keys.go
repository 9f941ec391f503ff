package cache

import "fmt"

const (
	GLOBAL_FEED_KEY     = "feed:global:%d:%d" // <page>:<limit>
	GLOBAL_FEED_PATTERN = "feed:global:*"
)

func GlobalFeedKey(page, limit int) string {
	return fmt.Sprintf(GLOBAL_FEED_KEY, page, limit)
}
