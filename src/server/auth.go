package server

import (
	"net/http"
	"strconv"
)

// O gateway upstream autentica a chamada e repassa a identidade do caller
// neste header. O core confia nesse id incondicionalmente (não re-autentica).
const callerHeader = "X-User-ID"

type authedHandler func(w http.ResponseWriter, r *http.Request, callerID int64)

// withCaller extrai a identidade do caller e rejeita chamadas sem ela.
func (s *Server) withCaller(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(callerHeader)
		if rawID == "" {
			http.Error(w, "Missing caller identity", http.StatusUnauthorized)
			return
		}

		callerID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || callerID <= 0 {
			http.Error(w, "Invalid caller identity", http.StatusUnauthorized)
			return
		}

		next(w, r, callerID)
	}
}
