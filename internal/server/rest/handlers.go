package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/melodia/internal/common"
	"github.com/dmitrijs2005/melodia/internal/server/models"
	"github.com/gorilla/mux"
)

type registerRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type addFavoriteRequest struct {
	MusicID json.RawMessage `json:"musica_id"`
}

// parseMusicID accepts a JSON number or a numeric string.
func parseMusicID(raw json.RawMessage) (int64, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("%w: musica_id is required", common.ErrorValidation)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	id, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return id, nil
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", common.ErrorValidation, err)
	}
	return nil
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.users.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		s.logger.Error(ctx, "register failed", "email", req.Email, "error", err)
		if errors.Is(err, common.ErrorInternal) {
			jsonError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, registerResponse{Message: msgUserCreated, Data: []*models.User{user}})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Warn(ctx, "login failed", "email", req.Email, "error", err)
		switch {
		case errors.Is(err, common.ErrorNotFound):
			jsonError(w, http.StatusBadRequest, msgUserNotFound)
		case errors.Is(err, common.ErrorUnauthorized):
			jsonError(w, http.StatusUnauthorized, msgWrongPassword)
		default:
			jsonError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, _ := ClaimsFromContext(ctx)

	user, err := s.users.GetUser(ctx, claims.UserID)
	if err != nil {
		s.logger.Warn(ctx, "me failed", "user_id", claims.UserID, "error", err)
		if errors.Is(err, common.ErrorNotFound) {
			jsonError(w, http.StatusNotFound, msgUserNotFound)
			return
		}
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, user.Public())
}

func (s *Server) listFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, _ := ClaimsFromContext(ctx)
	userID := mux.Vars(r)["id"]

	list, err := s.favorites.List(ctx, claims.UserID, userID)
	if err != nil {
		s.favoriteError(w, r, "list favorites failed", err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(list))
}

func (s *Server) addFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, _ := ClaimsFromContext(ctx)
	userID := mux.Vars(r)["id"]

	var req addFavoriteRequest
	if err := decodeBody(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	musicID, err := parseMusicID(req.MusicID)
	if err != nil {
		jsonError(w, http.StatusBadRequest, msgInvalidMusicID)
		return
	}

	f, err := s.favorites.Add(ctx, claims.UserID, userID, musicID)
	if err != nil {
		s.favoriteError(w, r, "add favorite failed", err)
		return
	}

	writeJSON(w, http.StatusOK, []*models.Favorite{f})
}

func (s *Server) removeFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, _ := ClaimsFromContext(ctx)
	vars := mux.Vars(r)

	musicID, err := strconv.ParseInt(vars["musica_id"], 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, msgInvalidMusicID)
		return
	}

	deleted, err := s.favorites.Remove(ctx, claims.UserID, vars["id"], musicID)
	if err != nil {
		s.favoriteError(w, r, "remove favorite failed", err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(deleted))
}

func (s *Server) favoriteError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.logger.Error(r.Context(), msg, "path", r.URL.Path, "error", err)
	if errors.Is(err, common.ErrorForbidden) {
		jsonError(w, http.StatusForbidden, msgAccessDenied)
		return
	}
	jsonError(w, http.StatusBadRequest, err.Error())
}

func nonNil(list []*models.Favorite) []*models.Favorite {
	if list == nil {
		return []*models.Favorite{}
	}
	return list
}
