package filtering

import (
	"sync"
	"time"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/debounce"
)

// DefaultSearchDebounce pausa de digitação antes de aplicar o termo de busca
const DefaultSearchDebounce = 300 * time.Millisecond

// SearchSession mantém os critérios de filtro de uma tela sobre um snapshot.
// O código postal e a troca de snapshot reaplicam na hora. O termo de busca
// só é aplicado depois de uma pausa sem novas digitações.
type SearchSession struct {
	mu         sync.Mutex
	snapshot   []domain.Campaign
	postalCode string
	searchTerm string
	pending    string
	results    []domain.Campaign

	debouncer *debounce.Debouncer
	onResults func([]domain.Campaign)
}

// NewSearchSession onResults pode ser nil
func NewSearchSession(snapshot []domain.Campaign, delay time.Duration, onResults func([]domain.Campaign)) *SearchSession {
	if delay <= 0 {
		delay = DefaultSearchDebounce
	}

	s := &SearchSession{
		snapshot:  snapshot,
		debouncer: debounce.New(delay),
		onResults: onResults,
	}
	s.results = ApplyFilters(snapshot, "", "")

	return s
}

// Type registra uma digitação. Digitações em sequência colapsam em uma única aplicação.
func (s *SearchSession) Type(term string) {
	s.mu.Lock()
	s.pending = term
	s.mu.Unlock()

	s.debouncer.Trigger(func() {
		s.mu.Lock()
		s.searchTerm = s.pending
		s.mu.Unlock()
		s.apply()
	})
}

// SetPostalCode troca o filtro de código postal e reaplica imediatamente
func (s *SearchSession) SetPostalCode(code string) {
	s.mu.Lock()
	s.postalCode = code
	s.mu.Unlock()
	s.apply()
}

// SetSnapshot substitui o snapshot após um refresh e reaplica os critérios atuais
func (s *SearchSession) SetSnapshot(snapshot []domain.Campaign) {
	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()
	s.apply()
}

// Flush aplica imediatamente o termo pendente, se houver
func (s *SearchSession) Flush() {
	if !s.debouncer.Cancel() {
		return
	}

	s.mu.Lock()
	s.searchTerm = s.pending
	s.mu.Unlock()
	s.apply()
}

// Close descarta a aplicação pendente
func (s *SearchSession) Close() {
	s.debouncer.Cancel()
}

func (s *SearchSession) Filters() domain.CampaignFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CampaignFilters{PostalCode: s.postalCode, SearchTerm: s.searchTerm}
}

func (s *SearchSession) Results() []domain.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]domain.Campaign, len(s.results))
	copy(results, s.results)
	return results
}

func (s *SearchSession) apply() {
	s.mu.Lock()
	results := ApplyFilters(s.snapshot, s.postalCode, s.searchTerm)
	s.results = results
	onResults := s.onResults
	s.mu.Unlock()

	if onResults != nil {
		onResults(results)
	}
}
