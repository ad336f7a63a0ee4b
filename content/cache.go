package content

import (
	"context"
	"html"
	"log"
	"strings"
	"sync"
	"time"

	strip "github.com/grokify/html-strip-tags-go"
)

const (
	LoadingText     = "Loading..."
	UnavailableText = "Content unavailable"
)

type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

// Label is the text for one object, possibly still in flight.
type Label struct {
	Text   string
	Status Status
}

// Cache fetches each id once in the background and remembers the outcome.
type Cache struct {
	src     Source
	timeout time.Duration

	mu      sync.Mutex
	entries map[string]Label
	wg      sync.WaitGroup
}

func NewCache(src Source, timeout time.Duration) *Cache {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Cache{src: src, timeout: timeout, entries: make(map[string]Label)}
}

// Lookup returns the label for id, starting a fetch on first use. The
// second result is false while the fetch is in flight.
func (c *Cache) Lookup(id string) (Label, bool) {
	c.mu.Lock()
	l, ok := c.entries[id]
	if !ok {
		l = Label{Text: LoadingText, Status: StatusLoading}
		c.entries[id] = l
		c.wg.Add(1)
		go c.fetch(id)
	}
	c.mu.Unlock()
	return l, l.Status != StatusLoading
}

// Prefetch starts fetches for ids not seen yet.
func (c *Cache) Prefetch(ids ...string) {
	for _, id := range ids {
		c.Lookup(id)
	}
}

// Wait blocks until every started fetch has finished.
func (c *Cache) Wait() {
	c.wg.Wait()
}

func (c *Cache) fetch(id string) {
	defer c.wg.Done()
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	l := Label{Status: StatusReady}
	raw, err := c.src.Fetch(ctx, id)
	if err != nil {
		log.Printf("content: fetch %s: %v", id, err)
		l = Label{Text: UnavailableText, Status: StatusFailed}
	} else {
		l.Text = PlainText(raw)
		if l.Text == "" {
			l = Label{Text: UnavailableText, Status: StatusFailed}
		}
	}

	c.mu.Lock()
	c.entries[id] = l
	c.mu.Unlock()
}

// PlainText strips markup and collapses whitespace, keeping paragraph
// breaks as newlines.
func PlainText(fragment string) string {
	s := fragment
	for _, br := range []string{"<br>", "<br/>", "<br />", "</p>", "</li>", "</h1>", "</h2>", "</h3>"} {
		s = strings.ReplaceAll(s, br, br+"\n")
	}
	s = html.UnescapeString(strip.StripTags(s))

	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
