// Package tokencount estimates LLM token usage for file contents.
package tokencount

import (
	"fmt"
	"strings"

	"github.com/hashicorp/golang-lru/v2"
	"github.com/pkoukk/tiktoken-go"
)

// DefaultModel is the tokenizer model used when none is configured.
const DefaultModel = "gpt-4o"

const encoderCacheSize = 8

// Counter estimates the token count of a piece of text.
type Counter interface {
	CountTokens(text string) int
}

// encoders caches one tokenizer per model name. Building a tokenizer loads
// its BPE ranks, so instances are reused across counters.
var encoders, _ = lru.New[string, *tiktoken.Tiktoken](encoderCacheSize)

// TiktokenCounter implements Counter with OpenAI's BPE tokenizers.
type TiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

// NewTiktokenCounter creates a counter for the given model name. An empty
// model selects DefaultModel. Unknown models return an error.
func NewTiktokenCounter(model string) (*TiktokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	enc, err := encoderFor(model)
	if err != nil {
		return nil, err
	}
	return &TiktokenCounter{enc: enc}, nil
}

func encoderFor(model string) (*tiktoken.Tiktoken, error) {
	if enc, ok := encoders.Get(model); ok {
		return enc, nil
	}
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("failed to get tokenizer for model %q: %w", model, err)
	}
	encoders.Add(model, enc)
	return enc, nil
}

// CountTokens returns the number of tokens in text.
func (c *TiktokenCounter) CountTokens(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

// FakeCounter implements Counter for tests: one token per
// whitespace-separated word. Calls records how many times CountTokens ran
// so cache behavior can be asserted.
type FakeCounter struct {
	Calls int
}

// CountTokens counts whitespace-separated words.
func (c *FakeCounter) CountTokens(text string) int {
	c.Calls++
	return len(strings.Fields(text))
}
