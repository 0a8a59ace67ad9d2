package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	apperrors "mathflow/backend/internal/errors"
)

// maxChunkRunes is the longest text the translate TTS endpoint accepts per call.
const maxChunkRunes = 100

// TranslateTTS synthesizes speech through the Google Translate TTS endpoint.
// Long text is split on sentence and word boundaries and the MP3 segments
// concatenated.
type TranslateTTS struct {
	client *http.Client
	url    string
}

func NewTranslateTTS(endpoint string) *TranslateTTS {
	return &TranslateTTS{
		client: &http.Client{},
		url:    endpoint,
	}
}

func (t *TranslateTTS) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	chunks := chunkText(text, maxChunkRunes)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("nothing to synthesize: %w", apperrors.ErrValidation)
	}

	var audio bytes.Buffer
	for i, chunk := range chunks {
		if err := t.fetch(ctx, chunk, lang, i, len(chunks), &audio); err != nil {
			return nil, err
		}
	}
	if audio.Len() == 0 {
		return nil, fmt.Errorf("tts returned no audio: %w: %w", apperrors.ErrProviderTransport, apperrors.ErrQuotaExceeded)
	}
	return audio.Bytes(), nil
}

func (t *TranslateTTS) fetch(ctx context.Context, chunk, lang string, idx, total int, dst *bytes.Buffer) error {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", lang)
	q.Set("q", chunk)
	q.Set("idx", strconv.Itoa(idx))
	q.Set("total", strconv.Itoa(total))
	q.Set("textlen", strconv.Itoa(utf8.RuneCountInString(chunk)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.url+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("could not create tts request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Referer", "http://translate.google.com/")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("tts request failed: %w: %w", apperrors.ErrProviderTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("tts chunk %d rate limited: %w: %w", idx, apperrors.ErrProviderTransport, apperrors.ErrQuotaExceeded)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("tts returned status %d: %s: %w", resp.StatusCode, string(body), apperrors.ErrProviderTransport)
	}
	if _, err := io.Copy(dst, resp.Body); err != nil {
		return fmt.Errorf("could not read tts audio: %w: %w", apperrors.ErrProviderTransport, err)
	}
	return nil
}

// chunkText splits text into sentences, then packs the whole words of each
// sentence into chunks of at most limit runes. A chunk never spans two
// sentences. A word longer than limit is cut.
func chunkText(text string, limit int) []string {
	var chunks []string
	for _, sentence := range splitSentences(text) {
		chunks = append(chunks, packWords(sentence, limit)...)
	}
	return chunks
}

// splitSentences cuts after sentence punctuation that is followed by
// whitespace or the end of the text, so "3.5" stays whole.
func splitSentences(text string) []string {
	var out []string
	runes := []rune(text)
	begin := 0
	for i, r := range runes {
		if !strings.ContainsRune(".!?;:…", r) {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[begin : i+1])); s != "" {
			out = append(out, s)
		}
		begin = i + 1
	}
	if s := strings.TrimSpace(string(runes[begin:])); s != "" {
		out = append(out, s)
	}
	return out
}

func packWords(text string, limit int) []string {
	var chunks []string
	var cur strings.Builder
	curLen := 0
	flush := func() {
		if cur.Len() > 0 {
			chunks = append(chunks, cur.String())
		}
		cur.Reset()
		curLen = 0
	}

	for _, word := range strings.Fields(text) {
		for utf8.RuneCountInString(word) > limit {
			flush()
			r := []rune(word)
			chunks = append(chunks, string(r[:limit]))
			word = string(r[limit:])
		}
		n := utf8.RuneCountInString(word)
		if curLen > 0 && curLen+1+n > limit {
			flush()
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(word)
		curLen += n
	}
	flush()
	return chunks
}
