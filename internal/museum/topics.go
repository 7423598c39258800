package museum

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vangogh/internal/logging"
)

// QueryTopics searches for the artist, fetches every matching object, and
// counts the tag terms across the objects actually attributed to the
// artist. total is the number of such objects. limit > 0 stops after that
// many objects have been fetched.
func (c *Client) QueryTopics(ctx context.Context, artist string, limit int) (map[string]int, int, error) {
	search, err := c.Search(ctx, artist)
	if err != nil {
		return nil, 0, err
	}

	ids := search.ObjectIDs
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	c.logger.Info("querying museum objects",
		logging.String("artist", artist),
		logging.Int("search_total", search.Total),
		logging.Int("objects", len(ids)))

	needle := strings.ToLower(strings.TrimSpace(artist))
	topics := make(map[string]int)
	total := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		obj, err := c.Object(ctx, id)
		if errors.Is(err, ErrNotFound) {
			logging.WarnWithContext(c.logger, "museum object missing", "museum_object_missing",
				logging.Int64("object_id", id),
				logging.String(logging.FieldImpact, "topic counts exclude this object"))
			continue
		}
		if err != nil {
			return nil, 0, fmt.Errorf("query topics: %w", err)
		}
		if !strings.Contains(strings.ToLower(obj.ArtistDisplayName), needle) {
			continue
		}
		total++
		for _, tag := range obj.Tags {
			term := strings.TrimSpace(tag.Term)
			if term == "" {
				continue
			}
			topics[term]++
		}
	}

	c.logger.Info("museum topics counted",
		logging.Int("matching_objects", total),
		logging.Int("distinct_topics", len(topics)))
	return topics, total, nil
}
