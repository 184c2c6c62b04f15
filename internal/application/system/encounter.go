package system

import (
	"github.com/younwookim/tinytown/internal/domain/entity"
	"github.com/younwookim/tinytown/internal/infrastructure/config"
)

// EventKind identifies an encounter outcome
type EventKind int

const (
	EventEnemyHit EventKind = iota
	EventEnemyDefeated
	EventPlayerHit
	EventPlayerDefeated
)

// String returns the event name
func (k EventKind) String() string {
	switch k {
	case EventEnemyHit:
		return "EnemyHit"
	case EventEnemyDefeated:
		return "EnemyDefeated"
	case EventPlayerHit:
		return "PlayerHit"
	case EventPlayerDefeated:
		return "PlayerDefeated"
	default:
		return "Unknown"
	}
}

// Event is emitted for every damage application
type Event struct {
	Kind EventKind
	// Target is the damaged actor, Source the one dealing damage
	Target entity.EntityID
	Source entity.EntityID
	Damage int
	Health int
}

// EncounterResult is the outcome of one encounter pass
type EncounterResult struct {
	Events         []Event
	Removed        []*entity.Actor
	ScoreDelta     int
	PlayerDefeated bool
}

// EncounterManager applies melee and contact damage between the player and enemies.
// It is the only writer of health and score.
type EncounterManager struct {
	combat       config.CombatConfig
	enemyAttacks bool
}

// NewEncounterManager creates an encounter manager. With enemyAttacks set, enemies
// hurt the player only through their attack hitbox; otherwise body contact hurts.
func NewEncounterManager(combat config.CombatConfig, enemyAttacks bool) *EncounterManager {
	return &EncounterManager{combat: combat, enemyAttacks: enemyAttacks}
}

// Resolve runs once per tick after every actor has moved. Each enemy is checked
// against the player's attack first, so one overlap is never counted as both an
// attack and a contact hit. It returns the surviving enemies.
func (m *EncounterManager) Resolve(player *entity.Actor, enemies []*entity.Actor) ([]*entity.Actor, EncounterResult) {
	var res EncounterResult
	hitbox, attacking := player.AttackHitbox()
	playerBounds := player.Bounds()

	survivors := make([]*entity.Actor, 0, len(enemies))
	for _, enemy := range enemies {
		if attacking && hitbox.Overlaps(enemy.Bounds()) {
			if m.strike(player, enemy, &res) {
				res.Removed = append(res.Removed, enemy)
				res.ScoreDelta += m.combat.KillScore
				continue
			}
			survivors = append(survivors, enemy)
			continue
		}

		survivors = append(survivors, enemy)
		if res.PlayerDefeated || !m.hurtsPlayer(enemy, playerBounds) {
			continue
		}
		m.damagePlayer(player, enemy, &res)
	}

	return survivors, res
}

// strike applies melee damage and reports whether the enemy was defeated
func (m *EncounterManager) strike(player, enemy *entity.Actor, res *EncounterResult) bool {
	swing := player.Combat.Swing
	if m.combat.HitOncePerSwing && enemy.LastSwingHit == swing {
		return false
	}
	enemy.LastSwingHit = swing

	defeated := enemy.TakeDamage(m.combat.MeleeDamage)
	res.Events = append(res.Events, Event{
		Kind:   EventEnemyHit,
		Target: enemy.ID,
		Source: player.ID,
		Damage: m.combat.MeleeDamage,
		Health: enemy.Health,
	})
	if defeated {
		res.Events = append(res.Events, Event{Kind: EventEnemyDefeated, Target: enemy.ID, Source: player.ID})
	}
	return defeated
}

func (m *EncounterManager) hurtsPlayer(enemy *entity.Actor, playerBounds entity.Rect) bool {
	if m.enemyAttacks {
		hitbox, active := enemy.AttackHitbox()
		return active && hitbox.Overlaps(playerBounds)
	}
	return enemy.Bounds().Overlaps(playerBounds)
}

func (m *EncounterManager) damagePlayer(player, enemy *entity.Actor, res *EncounterResult) {
	if player.IsInvincible() {
		return
	}

	defeated := player.TakeDamage(m.combat.ContactDamage)
	if m.combat.Iframes > 0 {
		player.IframeTimer = m.combat.Iframes
	}
	res.Events = append(res.Events, Event{
		Kind:   EventPlayerHit,
		Target: player.ID,
		Source: enemy.ID,
		Damage: m.combat.ContactDamage,
		Health: player.Health,
	})
	if defeated {
		res.Events = append(res.Events, Event{Kind: EventPlayerDefeated, Target: player.ID, Source: enemy.ID})
		res.PlayerDefeated = true
	}
}
