package api

import (
	"fmt"
	"net/http"
)

const apiVersion = "v1"
const prefix = "/api/" + apiVersion

func (s *server) bindRoutes() *server {
	r := s.router
	r.Use(s.limitRate, s.limitReqSize)

	// version routes
	r.HandleFunc("/version", s.handleVersionReq()).
		Methods("GET")
	r.HandleFunc("/node_version", s.handleNodeVersionReq()).
		Methods("GET")

	// governance routes
	r.HandleFunc(prefix+"/governances", s.handleQueryReq(cached, func(_ map[string]string) string {
		return "/gov/governances"
	})).Methods("GET")
	r.HandleFunc(prefix+"/governances/{mint}", s.handleQueryReq(cached, func(v map[string]string) string {
		return fmt.Sprintf("/gov/governance/%s", v["mint"])
	})).Methods("GET")
	r.HandleFunc(prefix+"/governances/{mint}/quorum", s.handleQueryReq(cached, func(v map[string]string) string {
		return fmt.Sprintf("/gov/quorum/%s", v["mint"])
	})).Methods("GET")
	r.HandleFunc(prefix+"/governances/{mint}/proposals", s.handleQueryReq(paged, func(v map[string]string) string {
		return fmt.Sprintf("/gov/proposals/%s", v["mint"])
	})).Methods("GET")
	r.HandleFunc(prefix+"/governances/{mint}/proposals/{id:[0-9]+}", s.handleQueryReq(cached, func(v map[string]string) string {
		return fmt.Sprintf("/gov/proposal/%s/%s", v["mint"], v["id"])
	})).Methods("GET")
	r.HandleFunc(prefix+"/governances/{mint}/proposals/{id:[0-9]+}/votes", s.handleQueryReq(cached, func(v map[string]string) string {
		return fmt.Sprintf("/gov/votes/%s/%s", v["mint"], v["id"])
	})).Methods("GET")
	r.HandleFunc(prefix+"/governances/{mint}/proposals/{id:[0-9]+}/votes/{voter}", s.handleQueryReq(cached, func(v map[string]string) string {
		return fmt.Sprintf("/gov/vote/%s/%s/%s", v["mint"], v["id"], v["voter"])
	})).Methods("GET")

	// staking routes
	r.HandleFunc(prefix+"/pools", s.handleQueryReq(cached, func(_ map[string]string) string {
		return "/staking/pools"
	})).Methods("GET")
	r.HandleFunc(prefix+"/pools/{mint}", s.handleQueryReq(cached, func(v map[string]string) string {
		return fmt.Sprintf("/staking/pool/%s", v["mint"])
	})).Methods("GET")
	r.HandleFunc(prefix+"/pools/{mint}/stakes", s.handleQueryReq(paged, func(v map[string]string) string {
		return fmt.Sprintf("/staking/stakes/%s", v["mint"])
	})).Methods("GET")
	r.HandleFunc(prefix+"/pools/{mint}/stakes/{owner}", s.handleQueryReq(cached, func(v map[string]string) string {
		return fmt.Sprintf("/staking/stake/%s/%s", v["mint"], v["owner"])
	})).Methods("GET")
	// pending rewards move with the clock, not the height
	r.HandleFunc(prefix+"/pools/{mint}/rewards/{owner}", s.handleQueryReq(uncached, func(v map[string]string) string {
		return fmt.Sprintf("/staking/rewards/%s/%s", v["mint"], v["owner"])
	})).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "no such endpoint")
	})
	return s
}
