package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/adrg/xdg"
	"github.com/gofrs/flock"
	"golang.org/x/time/rate"

	"muchong-engine/internal/cache"
	"muchong-engine/internal/config"
	"muchong-engine/internal/dataset"
	"muchong-engine/internal/events"
	"muchong-engine/internal/favorites"
	"muchong-engine/internal/httpapi"
	"muchong-engine/internal/kvstore"
	"muchong-engine/internal/theme"
	"muchong-engine/internal/view"
)

func main() {
	// Engine data dir: env wins (the shell can pass one), else XDG data home.
	dataDir := os.Getenv("MUCHONG_DATA_DIR")
	if dataDir == "" {
		dataDir = filepath.Join(xdg.DataHome, "muchong-engine")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// Two engines sharing one sqlite file ends badly; claim the dir first.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("data dir lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another engine instance is using %s", dataDir)
	}
	defer lock.Unlock()

	userCfgPath, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		c, err := config.Load(userCfgPath)
		if err != nil {
			return c, err
		}
		normalized, vr := config.NormalizeAndValidate(c)
		if !vr.OK() {
			log.Printf("level=warn msg=\"config has errors\" errors=%q", vr.Errors)
		}
		return normalized, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	store, err := kvstore.OpenSQLite(filepath.Join(dataDir, "muchong.db"), cfg.Storage.MaxValueBytes)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	dataCache := cache.New(store, time.Duration(cfg.Cache.TTLHours)*time.Hour)
	loader := dataset.NewLoader(dataCache)

	// Load once at startup; the view has nothing to show without data.
	snap, err := loader.Load(context.Background())
	if err != nil {
		log.Fatalf("dataset load failed: %v", err)
	}
	var snapVal atomic.Value
	snapVal.Store(snap)
	log.Printf("level=info msg=\"dataset loaded\" items=%d from_cache=%t", len(snap.Items), snap.FromCache)

	favs := favorites.New(store)

	themeStore := theme.New(store, func() theme.Theme {
		if t := os.Getenv("MUCHONG_SYSTEM_THEME"); t != "" {
			return theme.Theme(t)
		}
		return theme.Theme(cfg.Theme.SystemDefault)
	})

	hub := events.NewHub()

	session := view.NewSession(view.Config{
		Debounce:   time.Duration(cfg.UI.DebounceMS) * time.Millisecond,
		Settle:     time.Duration(cfg.UI.SettleMS) * time.Millisecond,
		Transition: time.Duration(cfg.UI.TransitionMS) * time.Millisecond,
		PageSizes:  cfg.UI.PageSizes,
	}, hub)
	defer session.Close()

	exportDir := cfg.Export.Dir
	if exportDir == "" {
		exportDir = filepath.Join(dataDir, "exports")
	}

	deps := httpapi.Deps{
		Snapshot:     &snapVal,
		Loader:       loader,
		Favorites:    favs,
		Theme:        themeStore,
		Session:      session,
		Hub:          hub,
		RefreshLimit: rate.NewLimiter(rate.Limit(float64(cfg.Refresh.PerMinute)/60.0), 1),
		CfgVal:       &cfgVal,
		UserCfgPath:  userCfgPath,
		LoadCfg:      loadCfg,
		ExportDir:    exportDir,
		ExportPrefix: cfg.Export.Prefix,
	}

	handler := httpapi.Chain(
		httpapi.NewMux(deps),
		httpapi.RequestID,
		httpapi.Recover,
		httpapi.AccessLog,
		httpapi.Cors,
	)

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("level=info msg=\"engine listening\" addr=http://%s data_dir=%s", addr, dataDir)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}
