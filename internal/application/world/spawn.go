package world

import (
	"math"

	"github.com/younwookim/tinytown/internal/domain/entity"
)

func (w *World) newID() entity.EntityID {
	w.nextID++
	return w.nextID
}

func (w *World) spawnPlayer() *entity.Actor {
	pc := w.cfg.Player
	pos := entity.Vec2{X: pc.Spawn.X, Y: pc.Spawn.Y}
	if w.level.HasPlayerSpawn {
		pos = w.level.PlayerSpawn
	}
	pos = w.resolver.ClampToWorld(pos, pc.Width, pc.Height)

	combat := entity.NewCombatTimers(pc.AttackDuration, pc.AttackCooldown)
	return entity.NewPlayer(w.newID(), pos.X, pos.Y, pc.Width, pc.Height, pc.MaxHealth, combat)
}

func (w *World) spawnEnemy() *entity.Actor {
	ec := w.cfg.Enemies
	pos := w.resolver.ClampToWorld(w.nextEnemySpawn(), ec.Width, ec.Height)

	var combat entity.CombatTimers
	if ec.Attack.Enabled {
		combat = entity.NewCombatTimers(ec.Attack.Duration, ec.Attack.Cooldown)
	}

	ai := entity.NewEnemyAI(ec.AI.ParsedModes(), pos, w.rng.Float64()*2*math.Pi)
	if w.rng.Intn(2) == 0 {
		ai.PatrolDir = 1
	}

	e := entity.NewEnemy(w.newID(), pos.X, pos.Y, ec.Width, ec.Height, ec.MaxHealth, combat, ai)
	if ai.Mode == entity.AIOrbit {
		r := ec.AI.OrbitRadius
		start := ai.Anchor.Add(entity.Vec2{X: r * math.Cos(ai.Phase), Y: r * math.Sin(ai.Phase)})
		e.Body.Place(w.resolver.ClampToWorld(start, ec.Width, ec.Height))
	}
	w.behavior.Arm(e)
	return e
}

// nextEnemySpawn cycles through the level's fixed spawn points, or picks a
// random point in the spawn area when the level has none
func (w *World) nextEnemySpawn() entity.Vec2 {
	if n := len(w.level.EnemySpawns); n > 0 {
		pos := w.level.EnemySpawns[w.spawnCursor%n]
		w.spawnCursor++
		return pos
	}
	area := w.cfg.SpawnRect()
	return entity.Vec2{
		X: area.X + w.rng.Float64()*area.W,
		Y: area.Y + w.rng.Float64()*area.H,
	}
}

// updateSpawner adds one enemy per interval while the population is below the cap
func (w *World) updateSpawner(dt float64) {
	sp := w.cfg.Enemies.Spawner
	if !sp.Enabled() {
		return
	}
	if len(w.enemies) >= sp.Max {
		w.spawnTimer = 0
		return
	}
	w.spawnTimer += dt
	if w.spawnTimer < sp.Interval {
		return
	}
	w.spawnTimer -= sp.Interval
	e := w.spawnEnemy()
	w.enemies = append(w.enemies, e)
	w.logger.Debug("enemy spawned", "id", e.ID, "x", e.Body.Pos.X, "y", e.Body.Pos.Y)
}
