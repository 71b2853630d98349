package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const resultsKey = "results"

// SavedResults is the match tally stored on disk.
type SavedResults struct {
	Matches int            `json:"matches"`
	Wins    map[string]int `json:"wins"`
}

// Record counts one finished match won by winner. An empty winner counts
// the match without crediting anyone.
func (r *SavedResults) Record(winner string) {
	r.Matches++
	if winner == "" {
		return
	}
	if r.Wins == nil {
		r.Wins = make(map[string]int)
	}
	r.Wins[winner]++
}

// itemStore is the subset of gdata.Manager used for results.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence opens the gdata store used for the results tally.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "tilebrawl",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// LoadResults returns the saved tally, or an empty one when nothing is
// stored or persistence is unavailable.
func LoadResults() (*SavedResults, error) {
	results := &SavedResults{}
	if store == nil {
		return results, nil
	}

	data, err := store.LoadItem(resultsKey)
	if err != nil {
		log.Printf("Warning: Could not load results: %v", err)
		return results, nil
	}
	if len(data) == 0 {
		return results, nil
	}

	if err := json.Unmarshal(data, results); err != nil {
		log.Printf("Warning: Could not parse saved results: %v", err)
		return &SavedResults{}, err
	}
	return results, nil
}

// SaveResults writes the tally to disk.
func SaveResults(r *SavedResults) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		log.Printf("Warning: Could not serialize results: %v", err)
		return err
	}

	if err := store.SaveItem(resultsKey, data); err != nil {
		log.Printf("Warning: Could not save results: %v", err)
		return err
	}
	return nil
}

// RecordWin loads the tally, records one match for winner and saves it.
func RecordWin(winner string) (*SavedResults, error) {
	results, err := LoadResults()
	if err != nil {
		return results, err
	}
	results.Record(winner)
	return results, SaveResults(results)
}
