package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

// TemplateCache keeps rendered admin template pages. Any template write clears it:
// pages depend on ordering and totals, so single-entry invalidation is not worth it.
// A nil *TemplateCache is valid and caches nothing.
type TemplateCache struct {
	cache *freecache.Cache
	ttl   time.Duration
}

func NewTemplateCache(sizeMB int, ttl time.Duration) *TemplateCache {
	if sizeMB <= 0 {
		return nil
	}
	// freecache enforces a 512KB minimum on its own
	return &TemplateCache{
		cache: freecache.NewCache(sizeMB * 1024 * 1024),
		ttl:   ttl,
	}
}

func templatePageKey(page, limit int, search string) []byte {
	return []byte(fmt.Sprintf("tpl:%d:%d:%s", page, limit, search))
}

func (c *TemplateCache) Get(page, limit int, search string) (*TemplatePage, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.cache.Get(templatePageKey(page, limit, search))
	if err != nil {
		return nil, false
	}
	var cached TemplatePage
	if err := json.Unmarshal(raw, &cached); err != nil {
		log.Warnf("template cache: drop undecodable entry: %s", err)
		c.cache.Del(templatePageKey(page, limit, search))
		return nil, false
	}
	return &cached, true
}

func (c *TemplateCache) Set(page, limit int, search string, templates *TemplatePage) {
	if c == nil || templates == nil {
		return
	}
	raw, err := json.Marshal(templates)
	if err != nil {
		log.Warnf("template cache: encode page: %s", err)
		return
	}
	if err := c.cache.Set(templatePageKey(page, limit, search), raw, int(c.ttl.Seconds())); err != nil {
		// entry larger than the cache allows; serve uncached
		log.Debugf("template cache: set page %d: %s", page, err)
	}
}

func (c *TemplateCache) Clear() {
	if c == nil {
		return
	}
	c.cache.Clear()
}

func (c *TemplateCache) Len() int64 {
	if c == nil {
		return 0
	}
	return c.cache.EntryCount()
}
