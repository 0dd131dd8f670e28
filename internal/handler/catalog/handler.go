package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/mood-mirror/backend/internal/model/catalog"
	"github.com/zhouzirui/mood-mirror/backend/pkg/utils"
)

// Handler 精选目录的HTTP处理器
type Handler struct {
	recommender *catalog.Recommender
}

// New 创建目录处理器
func New(recommender *catalog.Recommender) *Handler {
	return &Handler{recommender: recommender}
}

// RegisterRoutes 注册目录相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/catalog", func(r chi.Router) {
		r.Get("/games", h.handleListGames)
		r.Get("/outfits", h.handleListOutfits)
		r.Get("/playlists", h.handleListPlaylists)
	})
}

func (h *Handler) handleListGames(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.recommender.ListGames())
}

func (h *Handler) handleListOutfits(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.recommender.ListOutfits())
}

func (h *Handler) handleListPlaylists(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.recommender.ListPlaylists())
}
