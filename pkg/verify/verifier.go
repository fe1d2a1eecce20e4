// Package verify implements the optional LLM second-pass filter. It is
// strictly advisory: when the model is unreachable or returns garbage, every
// record passes through unverified.
package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"

	"bip-scraper/pkg/config"
	"bip-scraper/pkg/models"
	"bip-scraper/pkg/utils"
)

const systemPrompt = `Jesteś ekspertem od polskiego prawa ochrony środowiska. Twoim zadaniem jest weryfikacja wyników wyszukiwania decyzji o środowiskowych uwarunkowaniach (DUŚ).

KRYTERIA AKCEPTACJI - wynik jest POPRAWNY jeśli dotyczy:
1. Decyzji o środowiskowych uwarunkowaniach (DUŚ)
2. Postępowania w sprawie wydania DUŚ (wszczęcie, zawieszenie, podjęcie, umorzenie)
3. Oceny oddziaływania na środowisko (OOŚ)
4. Obwieszczenia o możliwości zapoznania się z aktami sprawy DUŚ
5. Raportu o oddziaływaniu na środowisko
6. Karty informacyjnej przedsięwzięcia

KRYTERIA ODRZUCENIA - wynik jest NIEPOPRAWNY jeśli dotyczy:
1. Programu ochrony środowiska (to inny dokument)
2. Pozwolenia na budowę (to osobna procedura)
3. Warunków zabudowy
4. Planu zagospodarowania przestrzennego
5. Przetargów, konkursów, naborów
6. Wyborów
7. Innych spraw niezwiązanych z DUŚ/OOŚ

Dla każdego wyniku określ:
- is_valid: true/false - czy wynik dotyczy DUŚ/OOŚ
- confidence: 0.0-1.0 - pewność oceny
- reason: krótkie uzasadnienie (max 50 znaków)

Odpowiedz w formacie JSON.`

// Criteria carries the user's search parameters into the prompt.
type Criteria struct {
	DateFrom   string
	DateTo     string
	Industries []string
}

// Model is the narrow LLM surface the verifier needs; satisfied by
// langchaingo model clients and by test fakes.
type Model interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// Verifier batches classified records through an LLM and drops records the
// model confidently rejects. Fail-open everywhere.
type Verifier struct {
	model         Model
	batchSize     int
	minConfidence float64
	maxTokens     int
	log           *logrus.Logger
}

// New creates a Verifier from configuration. An empty API key disables
// verification and returns a nil Verifier, which every method tolerates.
func New(cfg config.VerifyConfig, apiKey string, log *logrus.Logger) (*Verifier, error) {
	if !cfg.Enabled || apiKey == "" {
		log.Info("LLM verification disabled")
		return nil, nil
	}

	model, err := anthropic.New(
		anthropic.WithModel(cfg.Model),
		anthropic.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: initializing model client: %w", utils.ErrVerification, err)
	}

	log.WithField("model", cfg.Model).Info("LLM verifier initialized")
	return &Verifier{
		model:         model,
		batchSize:     cfg.BatchSize,
		minConfidence: cfg.MinConfidence,
		maxTokens:     cfg.MaxTokens,
		log:           log,
	}, nil
}

type batchVerdict struct {
	Results []recordVerdict `json:"results"`
}

type recordVerdict struct {
	ID         int     `json:"id"`
	IsValid    bool    `json:"is_valid"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// VerifyAll runs every record through the model in batches and returns the
// records that survived. A nil Verifier returns the input unchanged.
func (v *Verifier) VerifyAll(ctx context.Context, records []models.ClassifiedRecord, criteria Criteria, progress func(batch, total int)) []models.ClassifiedRecord {
	if v == nil || len(records) == 0 {
		return records
	}

	totalBatches := (len(records) + v.batchSize - 1) / v.batchSize
	for i := 0; i < len(records); i += v.batchSize {
		end := i + v.batchSize
		if end > len(records) {
			end = len(records)
		}
		if progress != nil {
			progress(i/v.batchSize+1, totalBatches)
		}
		v.verifyBatch(ctx, records[i:end], criteria)
	}

	out := make([]models.ClassifiedRecord, 0, len(records))
	for _, r := range records {
		// Unverified records pass; verified ones need validity and confidence.
		if !r.Verified || (r.Valid && r.Confidence >= v.minConfidence) {
			out = append(out, r)
		}
	}

	v.log.WithFields(logrus.Fields{
		"input":    len(records),
		"accepted": len(out),
	}).Info("LLM verification complete")
	return out
}

// verifyBatch annotates one batch in place. Every failure path leaves the
// batch unverified, which VerifyAll treats as accepted.
func (v *Verifier) verifyBatch(ctx context.Context, batch []models.ClassifiedRecord, criteria Criteria) {
	prompt := buildPrompt(batch, criteria)

	resp, err := v.model.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
			llms.TextParts(llms.ChatMessageTypeHuman, prompt),
		},
		llms.WithMaxTokens(v.maxTokens),
	)
	if err != nil {
		v.log.Warnf("Verification request failed, accepting batch unverified: %v", err)
		return
	}
	if len(resp.Choices) == 0 {
		v.log.Warn("Verification returned no choices, accepting batch unverified")
		return
	}

	verdict, err := parseVerdict(resp.Choices[0].Content)
	if err != nil {
		v.log.Warnf("Could not parse verification response, accepting batch unverified: %v", err)
		return
	}

	for _, rv := range verdict.Results {
		if rv.ID < 0 || rv.ID >= len(batch) {
			continue
		}
		batch[rv.ID].Verified = true
		batch[rv.ID].Valid = rv.IsValid
		batch[rv.ID].Confidence = rv.Confidence
		batch[rv.ID].VerifyReason = rv.Reason
	}
}

func buildPrompt(batch []models.ClassifiedRecord, criteria Criteria) string {
	var b strings.Builder

	industries := "wszystkie"
	if len(criteria.Industries) > 0 {
		industries = strings.Join(criteria.Industries, ", ")
	}
	fmt.Fprintf(&b, "Kryteria wyszukiwania użytkownika:\n- Okres: %s do %s\n- Branże: %s\n\n",
		criteria.DateFrom, criteria.DateTo, industries)

	b.WriteString("Wyniki do weryfikacji:\n")
	for i, r := range batch {
		fmt.Fprintf(&b, "\n---\nID: %d\nTytuł: %s\nŹródło: %s\nData: %s\nURL: %s\n",
			i, r.Title, r.SourceName, r.DateLabel(), r.SourceURL)
	}

	b.WriteString(`
Przeanalizuj każdy wynik i zwróć JSON w formacie:
{
  "results": [
    {"id": 0, "is_valid": true/false, "confidence": 0.0-1.0, "reason": "..."},
    ...
  ]
}`)
	return b.String()
}

// parseVerdict extracts the JSON object from a possibly chatty response.
func parseVerdict(text string) (*batchVerdict, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object in response", utils.ErrVerification)
	}

	var verdict batchVerdict
	if err := json.Unmarshal([]byte(text[start:end+1]), &verdict); err != nil {
		return nil, fmt.Errorf("%w: JSON decode: %w", utils.ErrVerification, err)
	}
	return &verdict, nil
}
