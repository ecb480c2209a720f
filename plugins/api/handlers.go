package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gorilla/mux"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/uachain/node/common/types"
	"github.com/uachain/node/version"
)

const HeightHeader = "X-Ledger-Height"

type queryOpts struct {
	cache bool
	paged bool
}

var (
	cached   = queryOpts{cache: true}
	uncached = queryOpts{}
	paged    = queryOpts{cache: true, paged: true}
)

type errorBody struct {
	Code    uint32 `json:"code"`
	Message string `json:"message"`
}

// middleware (limits, parsing, etc)

func (s *server) limitReqSize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// reject suspiciously large posts
		if r.ContentLength > s.maxPostSize {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, s.maxPostSize)
		next.ServeHTTP(w, r)
	})
}

// limitRate blocks until the limiter admits the request.
func (s *server) limitRate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.limiter.Take()
		next.ServeHTTP(w, r)
	})
}

// -----

func (s *server) handleVersionReq() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(version.Version))
	}
}

func (s *server) handleNodeVersionReq() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"version": version.NodeVersion,
			"height":  s.node.LastBlockHeight(),
		})
	}
}

// handleQueryReq answers with the JSON produced by the abci query at pathFn(vars).
// Responses are cached per (height, path) since committed state never changes at a height.
func (s *server) handleQueryReq(opts queryOpts, pathFn func(vars map[string]string) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := pathFn(mux.Vars(r))
		if opts.paged {
			suffix, err := paginationSuffix(r)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			path += suffix
		}

		height := s.node.LastBlockHeight()
		key := fmt.Sprintf("%d:%s", height, path)
		if opts.cache {
			if value, ok := s.cache.Get(key); ok {
				writeRaw(w, height, value.([]byte))
				return
			}
		}

		res := s.node.Query(abci.RequestQuery{Path: path})
		if res.Code != uint32(sdk.ABCICodeOK) {
			s.logger.Debug("query failed", "path", path, "code", res.Code, "log", res.Log)
			w.Header().Set(HeightHeader, strconv.FormatInt(res.Height, 10))
			writeErrorCode(w, statusOf(res), res.Code, res.Log)
			return
		}
		if opts.cache {
			s.cache.Add(fmt.Sprintf("%d:%s", res.Height, path), res.Value)
		}
		writeRaw(w, res.Height, res.Value)
	}
}

func paginationSuffix(r *http.Request) (string, error) {
	q := r.URL.Query()
	offsetStr, limitStr := q.Get("offset"), q.Get("limit")
	if offsetStr == "" && limitStr == "" {
		return "", nil
	}
	offset, limit := uint64(0), types.DefaultQueryLimit
	var err error
	if offsetStr != "" {
		if offset, err = strconv.ParseUint(offsetStr, 10, 64); err != nil {
			return "", fmt.Errorf("invalid offset %q", offsetStr)
		}
	}
	if limitStr != "" {
		if limit, err = strconv.Atoi(limitStr); err != nil {
			return "", fmt.Errorf("invalid limit %q", limitStr)
		}
	}
	return fmt.Sprintf("/%d/%d", offset, limit), nil
}

func statusOf(res abci.ResponseQuery) int {
	switch sdk.CodeType(res.Code) {
	case sdk.CodeUnknownRequest, sdk.CodeInvalidAddress:
		return http.StatusBadRequest
	default:
		return http.StatusNotFound
	}
}

func writeRaw(w http.ResponseWriter, height int64, value []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(HeightHeader, strconv.FormatInt(height, 10))
	w.WriteHeader(http.StatusOK)
	w.Write(value)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	bz, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(bz)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeErrorCode(w, status, uint32(sdk.CodeUnknownRequest), msg)
}

func writeErrorCode(w http.ResponseWriter, status int, code uint32, msg string) {
	bz, _ := json.Marshal(errorBody{Code: code, Message: msg})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bz)
}
