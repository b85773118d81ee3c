// Package server serves hopper's API over HTTP.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"

	"github.com/voidshard/hopper/internal/utils"
	"github.com/voidshard/hopper/pkg/api"
	"github.com/voidshard/hopper/pkg/api/http/common"
	"github.com/voidshard/hopper/pkg/structs"
)

const (
	wait = 30 * time.Second
)

type Server struct {
	addr       string
	static     string
	tlsCert    string
	tlsKey     string
	debug      bool
	svc        api.API
	exit       chan os.Signal
	httpserver *http.Server
}

func (s *Server) ServeForever(svc api.API) error {
	s.svc = svc

	router := mux.NewRouter()
	router.HandleFunc("/healthz", s.Health).Methods(http.MethodGet)
	router.HandleFunc(common.API_JOBS, s.Jobs).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc(common.API_POLL, s.Poll).Methods(http.MethodPatch)
	router.HandleFunc(common.API_TRACK, s.Track).Methods(http.MethodPost)
	router.HandleFunc(common.API_UNTRACK, s.Untrack).Methods(http.MethodPatch)
	router.HandleFunc(common.API_REMOTE_JOBS, s.RemoteJobs).Methods(http.MethodGet)
	router.HandleFunc(common.API_DATASETS, s.DataSets).Methods(http.MethodGet)
	router.HandleFunc(common.API_MEMBERS, s.Members).Methods(http.MethodGet)
	router.HandleFunc(common.API_STATUS, s.Status).Methods(http.MethodGet)

	if s.static != "" {
		log.Println("Serving static files from", s.static)
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(s.static)))
	}

	router.Use(recoverMiddleware)
	if s.debug {
		log.Println("Debug enabled, adding per-request logging middleware")
		router.Use(loggingMiddleware)
	}

	s.httpserver = &http.Server{
		Handler:      router,
		Addr:         s.addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	tlscfg, err := utils.TLSConfig("", s.tlsCert, s.tlsKey)
	if err != nil {
		return err
	}

	go func() {
		log.Println("Listening on", s.httpserver.Addr)
		if tlscfg != nil {
			s.httpserver.TLSConfig = tlscfg
			err = s.httpserver.ListenAndServeTLS("", "")
		} else {
			err = s.httpserver.ListenAndServe()
		}
		if err != nil {
			log.Println(err)
		}
	}()

	signal.Notify(s.exit, os.Interrupt)
	defer s.Close()
	<-s.exit

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()
	s.httpserver.Shutdown(ctx)
	os.Exit(0)
	return nil
}

func (s *Server) Jobs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.getJobs(w, r)
	case http.MethodPost:
		s.submitJob(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) submitJob(w http.ResponseWriter, r *http.Request) {
	req := &structs.JobRequest{}
	err := unmarshalJson(w, r, req)
	if err != nil {
		return
	}

	job, err := s.svc.SubmitCompileAndRun(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	// ?track=true has the server follow the job in the background,
	// updating history as it goes
	if r.URL.Query().Get("track") == "true" {
		_, err = s.svc.Track(job)
		if err != nil {
			log.Println("submitted", job.ID, "but could not track it:", err)
		}
	}

	err = json.NewEncoder(w).Encode(job)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) getJobs(w http.ResponseWriter, r *http.Request) {
	q := &structs.Query{}
	err := unmarshalQuery(w, r, q)
	if err != nil {
		return
	}

	items, err := s.svc.Jobs(r.Context(), q)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	if s.debug {
		log.Println(r.URL, "returned", len(items), "items")
	}

	err = json.NewEncoder(w).Encode(items)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) Poll(w http.ResponseWriter, r *http.Request) {
	job := &structs.Job{}
	err := unmarshalJson(w, r, job)
	if err != nil {
		return
	}

	job, err = s.svc.PollOnce(r.Context(), job)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	err = json.NewEncoder(w).Encode(job)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) Track(w http.ResponseWriter, r *http.Request) {
	job := &structs.Job{}
	err := unmarshalJson(w, r, job)
	if err != nil {
		return
	}

	_, err = s.svc.Track(job)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	err = json.NewEncoder(w).Encode(&common.UpdateResponse{Updated: 1})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) Untrack(w http.ResponseWriter, r *http.Request) {
	in := &common.TrackRequest{}
	err := unmarshalJson(w, r, in)
	if err != nil {
		return
	}

	err = s.svc.CancelTracking(in.ID)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	err = json.NewEncoder(w).Encode(&common.UpdateResponse{Updated: 1})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) RemoteJobs(w http.ResponseWriter, r *http.Request) {
	items, err := s.svc.RemoteJobs(r.Context(), r.URL.Query().Get("owner"))
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	err = json.NewEncoder(w).Encode(items)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) DataSets(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("pattern")
	if pattern == "" {
		http.Error(w, "pattern is required", http.StatusBadRequest)
		return
	}

	items, err := s.svc.DataSets(r.Context(), pattern)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	err = json.NewEncoder(w).Encode(items)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) Members(w http.ResponseWriter, r *http.Request) {
	dataset := r.URL.Query().Get("dataset")
	if dataset == "" {
		http.Error(w, "dataset is required", http.StatusBadRequest)
		return
	}

	items, err := s.svc.Members(r.Context(), dataset)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	err = json.NewEncoder(w).Encode(items)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Status reports whether the remote system is answering us.
func (s *Server) Status(w http.ResponseWriter, r *http.Request) {
	err := s.svc.Healthy(r.Context())
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

func (s *Server) Close() error {
	s.exit <- os.Interrupt
	return nil
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

func NewServer(addr, static, tlsCert, tlsKey string, debug bool) *Server {
	return &Server{
		addr:    addr,
		static:  static,
		tlsCert: tlsCert,
		tlsKey:  tlsKey,
		debug:   debug,
		exit:    make(chan os.Signal, 1),
	}
}
