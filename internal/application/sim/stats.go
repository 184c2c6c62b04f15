package sim

import "github.com/younwookim/tinytown/internal/application/system"

// Stats aggregates what happened during a run
type Stats struct {
	Ticks   int
	Elapsed float64

	EnemyHits       int
	EnemiesDefeated int
	DamageDealt     int

	PlayerHits  int
	DamageTaken int
	Defeats     int

	FinalScore  int
	BestScore   int
	FinalHealth int
	Enemies     int
}

// record folds one tick of events into s
func (s *Stats) record(events []system.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case system.EventEnemyHit:
			s.EnemyHits++
			s.DamageDealt += ev.Damage
		case system.EventEnemyDefeated:
			s.EnemiesDefeated++
		case system.EventPlayerHit:
			s.PlayerHits++
			s.DamageTaken += ev.Damage
		case system.EventPlayerDefeated:
			s.Defeats++
		}
	}
}
