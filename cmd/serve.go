package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/melowave/chord"
	"github.com/jsphweid/melowave/config"
	"github.com/jsphweid/melowave/constants"
	"github.com/jsphweid/melowave/db"
	"github.com/jsphweid/melowave/file"
	"github.com/jsphweid/melowave/logger"
	"github.com/jsphweid/melowave/model"
	"github.com/jsphweid/melowave/parser"
	"github.com/jsphweid/melowave/score"
	"github.com/jsphweid/melowave/util"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var cataloguePath string

func init() {
	serveCmd.Flags().StringVar(&cataloguePath, "config", constants.GetCataloguePath(), "song catalogue file")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves transcriptions over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

type SongResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	TicksPerBeat int                 `json:"ticks_per_beat"`
	Metadata     *model.SongMetadata `json:"metadata,omitempty"`
	Midi         model.Song          `json:"midi"`
	Scores       []score.Score       `json:"scores"`
}

type Server struct {
	log  *logger.Logger
	meta *db.MetadataStore

	mu     sync.RWMutex
	songs  model.SongNumToPath
	titles []string
}

func NewServer(c *config.Config, meta *db.MetadataStore, log *logger.Logger) *Server {
	s := &Server{log: log, meta: meta}
	s.SetCatalogue(c)
	return s
}

// SetCatalogue swaps the song list; safe to call while serving.
func (s *Server) SetCatalogue(c *config.Config) {
	songs := file.CreateFileNumMap(c.Paths())
	titles := c.Titles()
	s.mu.Lock()
	s.songs, s.titles = songs, titles
	s.mu.Unlock()
}

func (s *Server) song(num int) (path, title string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.songs) == 0 {
		return "", "", false
	}
	n := uint32(util.Mod(num, len(s.songs)))
	return s.songs[n], s.titles[n], true
}

func (s *Server) Router() http.Handler {
	// chord symbols may contain an escaped "/", so match on the raw path
	// and never clean or redirect it
	router := mux.NewRouter().SkipClean(true).UseEncodedPath()
	router.HandleFunc("/song_list", s.HandleSongList).Methods(http.MethodGet)
	router.HandleFunc("/song/{num:-?[0-9]+}", s.HandleSong).Methods(http.MethodGet)
	router.HandleFunc("/generate", s.HandleGenerate).Methods(http.MethodPost)
	router.HandleFunc("/chord/{symbol:.+}", s.HandleChord).Methods(http.MethodGet)
	router.HandleFunc("/progression", s.HandleProgression).Methods(http.MethodGet)
	return cors.Default().Handler(router)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("writing response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func (s *Server) HandleSongList(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	titles := append([]string{}, s.titles...)
	s.mu.RUnlock()
	s.writeJSON(w, http.StatusOK, titles)
}

func (s *Server) HandleSong(w http.ResponseWriter, r *http.Request) {
	num, err := strconv.Atoi(mux.Vars(r)["num"])
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	path, title, ok := s.song(num)
	if !ok {
		s.writeError(w, http.StatusNotFound, errors.New("no songs available"))
		return
	}

	song, err := LoadSong(path, excerpt{})
	if err != nil {
		s.log.Error("loading song", "path", path, "error", err)
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	res := s.transcribe(title, song)
	filename := filepath.Base(path)
	metas, err := s.meta.GetSongMetadatas(r.Context(), []string{filename})
	if err != nil {
		s.log.Warn("metadata lookup failed", "file", filename, "error", err)
	} else if m, ok := metas[filename]; ok {
		res.Metadata = &m
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxUploadSize)
	f, header, err := r.FormFile("sample")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	defer f.Close()

	song, err := ReadSong(f)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.transcribe(header.Filename, song))
}

func (s *Server) transcribe(name string, song model.Song) SongResponse {
	start := time.Now()
	res := SongResponse{
		ID:           uuid.New().String(),
		Name:         name,
		TicksPerBeat: song.TicksPerBeat,
		Midi:         song,
		Scores:       score.Transcribe(song),
	}
	s.log.Info("transcribed", "id", res.ID, "name", name, "tracks", len(res.Scores), "took", time.Since(start))
	return res
}

func (s *Server) HandleChord(w http.ResponseWriter, r *http.Request) {
	symbol, err := url.PathUnescape(mux.Vars(r)["symbol"])
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	c, sym, err := parser.ParseChord(symbol)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, chordResponse(c, sym))
}

func chordResponse(c chord.Chord, sym parser.Symbol) model.ChordResponse {
	var pitches []string
	for _, p := range c.Pitches() {
		pitches = append(pitches, p.String())
	}
	return model.ChordResponse{
		Name:    c.String(),
		Root:    sym.Root,
		Quality: sym.Quality,
		Bass:    sym.Bass,
		Pitches: pitches,
	}
}

func (s *Server) HandleProgression(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	transpose := 0
	if v := q.Get("transpose"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		transpose = n
	}

	chords, err := parser.ParseProgression(parser.SplitProgression(q.Get("chords")))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	res := model.ProgressionResponse{Transpose: transpose, Chords: []string{}}
	for _, c := range parser.TransposeProgression(chords, transpose) {
		res.Chords = append(res.Chords, c.String())
	}
	s.writeJSON(w, http.StatusOK, res)
}

// ShutdownTimeout bounds how long in-flight requests may finish.
const ShutdownTimeout = 5 * time.Second

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

func shutdown(srv shutdowner, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("shutdown", "error", err)
	}
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := config.Load(cataloguePath)
	if err != nil {
		return err
	}
	if !rootCmd.PersistentFlags().Changed("log-level") && c.LogLevel != "" {
		logLevel = c.LogLevel
	}
	if !rootCmd.PersistentFlags().Changed("log-format") && c.LogFormat != "" {
		logFormat = c.LogFormat
	}
	log := newLogger()

	meta, err := db.NewMetadataStoreFromEnv(log)
	if err != nil {
		return err
	}

	s := NewServer(c, meta, log)
	go func() {
		if err := config.Watch(ctx, cataloguePath, log, s.SetCatalogue); err != nil {
			log.Warn("catalogue reload disabled", "error", err)
		}
	}()

	srv := &http.Server{Addr: c.ListenAddr, Handler: s.Router(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdown(srv, log)
	}()

	log.Info("serving", "addr", c.ListenAddr, "songs", len(c.Songs), "metadata", meta != nil)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
