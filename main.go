package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	// hideconsole
	_ "github.com/ebitengine/hideconsole"

	"jokolay/activemap"
	"jokolay/config"
	"jokolay/debugserver"
	"jokolay/diagnostics"
	"jokolay/mlink"
	"jokolay/packstore"
	"jokolay/render"
	"jokolay/render/ebitensink"
	"jokolay/storage"
)

func main() {
	var packPath, linkName string
	var debugServer bool
	flag.StringVar(&packPath, "pack", "", "path to a marker pack directory; defaults to the configured pack directory")
	flag.StringVar(&linkName, "link-name", "", "override the configured MumbleLink shared-memory name")
	flag.BoolVar(&debugServer, "debug-server", false, "enable the local websocket debug feed")
	flag.Parse()

	opts := config.Load()
	if linkName != "" {
		opts.LinkName = linkName
	}
	if debugServer {
		opts.DebugServerEnabled = true
	}
	opts.Normalize()
	if err := opts.Save(); err != nil {
		log.Printf("failed to persist engine options: %v", err)
	}

	if packPath == "" {
		packPath = opts.PackDir
	}

	lockPath := storage.DataFile(".jokolay.lock")
	_, lockOwned, cleanupLock, err := prepareLock(lockPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to acquire lock file: %v\n", err)
		os.Exit(1)
	}
	defer cleanupLock()
	if !lockOwned {
		log.Printf("lock file %s already exists; another instance may be running", lockPath)
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable, \"copy diagnostics\" will be a no-op: %v", err)
	}
	diagnostics.Init()

	game := newGame(packPath, opts)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalChan
		log.Println("received shutdown signal, flushing pack store state...")
		game.shutdown()
		cleanupLock()
		os.Exit(0)
	}()

	if opts.DebugServerEnabled {
		srv := debugserver.NewServer()
		game.debugHub = srv.Hub()
		go func() {
			if err := srv.ListenAndServe(opts.DebugServerAddr); err != nil {
				log.Printf("debug server stopped: %v", err)
			}
		}()
	}

	ebiten.SetWindowTitle("Jokolay")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenTransparent(true)
	ebiten.SetWindowSize(1600, 900)
	ebiten.SetWindowPosition(0, 0)

	if err := ebiten.RunGameWithOptions(game, &ebiten.RunGameOptions{
		X11ClassName:      "Jokolay",
		X11InstanceName:   "jokolay",
		ScreenTransparent: true,
	}); err != nil {
		log.Fatalf("game loop exited: %v", err)
	}
}

// prepareLock mirrors the teacher's own O_CREATE|O_EXCL lock-file pattern:
// a stale/present lock file never blocks startup outright, it only
// downgrades owned to false so the caller can warn instead of refusing to
// run, since a crashed previous instance must not strand the user.
func prepareLock(lockPath string) (*os.File, bool, func(), error) {
	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	owned := true
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			owned = false
			lockFile, err = os.OpenFile(lockPath, os.O_WRONLY, 0o644)
			if err != nil {
				return nil, false, nil, err
			}
		} else {
			return nil, false, nil, err
		}
	}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			if lockFile != nil {
				_ = lockFile.Close()
			}
			if owned {
				os.Remove(lockPath)
			}
		})
	}
	return lockFile, owned, cleanup, nil
}

// Game is the cooperative single-threaded ebiten loop tying the Link
// Bridge, Pack Store, Active-Map Selector, and Projector/Sink together
// into one running engine (spec section 6).
type Game struct {
	opts config.EngineOptions

	bridge       *mlink.Bridge
	lastReopen   time.Time
	lastSnapshot mlink.Snapshot
	haveSnapshot bool

	store    *packstore.Store
	selector *activemap.Selector

	sink      *ebitensink.Sink
	projector *render.Projector

	hud      *diagnostics.HUD
	crash    *diagnostics.CrashNotifier
	debugHub *debugserver.Hub

	screenW, screenH int
}

func newGame(packPath string, opts config.EngineOptions) *Game {
	sink := ebitensink.New(1.0)
	g := &Game{
		opts:      opts,
		hud:       diagnostics.NewHUD(),
		crash:     diagnostics.Global(),
		sink:      sink,
		projector: render.NewProjector(sink, opts.InchesPerMeter),
		screenW:   1600,
		screenH:   900,
	}

	g.openBridge()
	g.loadPack(packPath)

	return g
}

func (g *Game) openBridge() {
	bridge, err := mlink.Open(g.opts.LinkName)
	if err != nil {
		log.Printf("MumbleLink not available yet (%v); will keep retrying", err)
		g.lastReopen = time.Now()
		return
	}
	g.bridge = bridge
}

func (g *Game) loadPack(packPath string) {
	if packPath == "" {
		log.Printf("no pack directory configured; running with no markers loaded")
		return
	}
	store, err := packstore.Open(packPath, filepath.Base(packPath))
	if err != nil {
		log.Printf("failed to load pack %s: %v", packPath, err)
		g.crash.Show(diagnostics.FailureInfo{
			Title:   "Pack load failed",
			Message: fmt.Sprintf("could not load marker pack at %s: %v", packPath, err),
		})
		return
	}
	g.store = store
	g.selector = activemap.NewSelector(store, g.sink)
	if len(store.Pack.Failures.Warnings) > 0 {
		log.Printf("pack %s loaded with %d warning(s)", packPath, len(store.Pack.Failures.Warnings))
	}
}

func (g *Game) shutdown() {
	if g.store != nil {
		if err := g.store.SaveAll(); err != nil {
			log.Printf("failed to save pack store state on shutdown: %v", err)
		}
	}
	if g.bridge != nil {
		g.bridge.Close()
	}
}

// Update advances the engine by one tick: poll the bridge, re-materialize
// the active map if needed, and run the projector. A recovered panic is
// surfaced through the crash notifier rather than taking the process down,
// the same recovery role the teacher's panic notifier plays.
func (g *Game) Update() (err error) {
	defer func() {
		if r := recover(); r != nil {
			g.crash.ShowPanic(r)
			err = nil
		}
	}()

	now := time.Now()

	if g.bridge == nil {
		if now.Sub(g.lastReopen) >= time.Second {
			g.lastReopen = now
			g.openBridge()
		}
	} else if snap, pollErr := g.bridge.Poll(now); pollErr != nil {
		log.Printf("bridge poll error: %v", pollErr)
	} else if snap != nil {
		g.lastSnapshot = *snap
		g.haveSnapshot = true
	}

	g.hud.GameDetected = g.bridge != nil && g.bridge.GameDetected()
	if g.store != nil {
		g.hud.PackName = filepath.Base(g.opts.PackDir)
		g.hud.Warnings = len(g.store.Pack.Failures.Warnings)
	}

	g.crash.Update()

	if g.selector == nil || !g.haveSnapshot {
		return nil
	}

	g.selector.OnMapChange(g.lastSnapshot.MapID)
	if g.lastSnapshot.Changes.Has(mlink.ChangedMapID) {
		g.projector.InvalidateRibbonCache()
	}
	markers, trails := g.selector.Materialize(g.lastSnapshot, now)
	g.hud.MarkerCount = len(markers)
	g.hud.TrailCount = len(trails)

	params := render.BillboardParams{
		WindowWidthPx:     float32(g.screenW),
		DPIScale:          float32(g.lastSnapshot.DPI) / 96,
		DPIScalingEnabled: g.lastSnapshot.DPIScalingEnabled,
	}
	if params.DPIScale <= 0 {
		params.DPIScale = 1
	}
	g.projector.Run(markers, trails, g.lastSnapshot, params)

	if g.debugHub != nil {
		g.debugHub.PublishSnapshot(debugserver.SnapshotData{
			MapID:         g.lastSnapshot.MapID,
			ShardID:       g.lastSnapshot.ShardID,
			CharacterName: g.lastSnapshot.CharacterName,
			CameraX:       g.lastSnapshot.CameraPos.X,
			CameraY:       g.lastSnapshot.CameraPos.Y,
			CameraZ:       g.lastSnapshot.CameraPos.Z,
			Mount:         uint8(g.lastSnapshot.Mount),
			ActiveMarkers: len(markers),
			ActiveTrails:  len(trails),
		})
	}

	if g.store != nil && g.store.Dirty.Any() {
		g.store.ScheduleSave()
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.haveSnapshot {
		cam := render.Camera{
			Position:       render.Vec3{X: g.lastSnapshot.CameraPos.X, Y: g.lastSnapshot.CameraPos.Y, Z: g.lastSnapshot.CameraPos.Z},
			Front:          render.Vec3{X: g.lastSnapshot.CameraFront.X, Y: g.lastSnapshot.CameraFront.Y, Z: g.lastSnapshot.CameraFront.Z},
			ZNear:          g.sink.ZNear(),
			WindowWidthPx:  float32(g.screenW),
			WindowHeightPx: float32(g.screenH),
		}
		g.sink.Flush(screen, func(p render.Vec3) (float32, float32) {
			x, y, ok := cam.Project(p)
			if !ok {
				return -1, -1
			}
			return x, y
		})
	}

	g.hud.Draw(screen)
	g.crash.Draw(screen, g.screenW, g.screenH)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW, g.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
