package scheduler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"aquadash/internal/config"
	"aquadash/internal/models"
	"aquadash/internal/store"
)

// Scheduler runs the daily maintenance job: an automatic backup file plus a
// reminder log of due tasks and plant care.
type Scheduler struct {
	cron  *cron.Cron
	store *store.Store
	cfg   config.BackupConfig
	log   *zap.Logger
}

// New creates a scheduler over the given store. The cron schedule runs in the
// configured timezone; an unknown zone falls back to the host's local time.
func New(cfg config.BackupConfig, st *store.Store, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Warn("unknown timezone, using local", zap.String("timezone", cfg.Timezone), zap.Error(err))
		loc = time.Local
	}
	return &Scheduler{
		cron:  cron.New(cron.WithLocation(loc)),
		store: st,
		cfg:   cfg,
		log:   log,
	}
}

// Start registers the daily job and starts the cron loop.
func (s *Scheduler) Start() {
	s.log.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runDaily); err != nil {
		s.log.Error("failed to schedule daily job", zap.Error(err))
		return
	}
	s.cron.Start()
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	s.log.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDaily() {
	s.writeBackup()
	s.logDueWork()
}

// writeBackup drops the same document a manual export produces into the
// backup directory.
func (s *Scheduler) writeBackup() {
	doc := s.store.ExportAll()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.log.Error("failed to encode backup", zap.Error(err))
		return
	}

	if err := os.MkdirAll(s.cfg.Dir, 0755); err != nil {
		s.log.Error("failed to create backup dir", zap.Error(err))
		return
	}

	path := filepath.Join(s.cfg.Dir, store.BackupFilename(time.Now()))
	if err := os.WriteFile(path, data, 0644); err != nil {
		s.log.Error("failed to write backup", zap.String("path", path), zap.Error(err))
		return
	}
	s.log.Info("backup written", zap.String("path", path))
}

// logDueWork logs every task and plant-care task due today or earlier.
func (s *Scheduler) logDueWork() {
	snap := s.store.Snapshot()
	today := time.Now().Format("2006-01-02")

	for _, t := range snap.Tasks {
		if !t.Completed && t.NextDue != "" && t.NextDue <= today {
			s.log.Info("task due",
				zap.String("title", t.Title),
				zap.String("type", t.Type),
				zap.String("nextDue", t.NextDue))
		}
	}
	for _, c := range snap.PlantCare {
		if !c.Completed && c.NextDue != "" && c.NextDue <= today {
			s.log.Info("plant care due",
				zap.String("plant", models.PlantName(snap.Plants, c.PlantID)),
				zap.String("task", c.TaskType),
				zap.String("nextDue", c.NextDue))
		}
	}
}
