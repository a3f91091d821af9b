// Package handler はheritageフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"heritage_backend/internal/feature/heritage/domain/entity"
	"heritage_backend/internal/feature/heritage/usecase"
	"heritage_backend/internal/platform/geo"
	"heritage_backend/internal/platform/mapdoc"
	"heritage_backend/internal/platform/session"
)

const (
	// accuracyRadiusM is the GPS accuracy ring drawn around each point.
	accuracyRadiusM = 50.0
	// accuracyVertices is the vertex count of the accuracy polygon.
	accuracyVertices = 28

	// Viewport defaults, matching the historical behavior:
	// one point zooms close, several zoom wide then fit bounds, none falls
	// back to the Lomé area.
	zoomSingle       = 16
	zoomMulti        = 13
	zoomDefault      = 12
	defaultCenterLat = 6.13
	defaultCenterLon = 1.22
)

// HeritageUsecase はポイント登録・一覧のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type HeritageUsecase interface {
	// Add は座標を正規化してポイントを登録します。
	Add(ctx context.Context, ownerID uint, name, lat, lon string) error
	// ListForUser は指定ユーザーのポイントを所有者名付きで取得します。
	ListForUser(ctx context.Context, userID uint) ([]entity.PointWithOwner, error)
}

// MapWriter abstracts rendering the map document to disk.
type MapWriter interface {
	Write(doc mapdoc.Document) error
}

// HeritageHandler は一覧・登録・経路ページのリクエストを処理します。
type HeritageHandler struct {
	heritage HeritageUsecase
	maps     MapWriter
}

// NewHeritageHandler はHeritageHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewHeritageHandler(heritage HeritageUsecase, maps MapWriter) *HeritageHandler {
	return &HeritageHandler{heritage: heritage, maps: maps}
}

// Index はログインユーザーのポイントから地図ドキュメントを生成し、一覧ページを表示します。
func (h *HeritageHandler) Index(c *gin.Context) {
	userID := c.GetUint(session.ContextUserID)
	userName := c.GetString(session.ContextUserName)

	points, err := h.heritage.ListForUser(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to list heritage points", "error", err, "user_id", userID)
		h.renderIndexError(c, userName, "Impossible de charger les patrimoines.")
		return
	}

	if err := h.maps.Write(buildMapDocument(points)); err != nil {
		slog.Error("failed to render map document", "error", err, "user_id", userID)
		h.renderIndexError(c, userName, "Impossible d'afficher la carte.")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"UserName":   userName,
		"PointCount": len(points),
		"MapURL":     "/maps/" + mapdoc.FileName,
		"Flashes":    session.PopFlashes(c),
	})
}

// renderIndexError renders the list page without a map, keeping any pending
// notices and adding the failure one. Set-then-pop would lose the new notice
// because flashes are carried in the request cookie.
func (h *HeritageHandler) renderIndexError(c *gin.Context, userName, message string) {
	flashes := append(session.PopFlashes(c), session.Flash{Level: session.FlashError, Message: message})
	c.HTML(http.StatusOK, "index.html", gin.H{
		"UserName": userName,
		"Flashes":  flashes,
	})
}

// buildMapDocument は地図ドキュメントを組み立てます。
// 中心は座標の算術平均、ズームは件数で切り替え、各ポイントにマーカー・
// ポップアップ・精度ポリゴンを付与します。
func buildMapDocument(points []entity.PointWithOwner) mapdoc.Document {
	var coords [][2]float64
	var markers []mapdoc.Marker

	for _, p := range points {
		lat, errLat := strconv.ParseFloat(p.Latitude, 64)
		lon, errLon := strconv.ParseFloat(p.Longitude, 64)
		if errLat != nil || errLon != nil {
			// 保存値は常に正規化済みのはず。別経路で入った行はスキップする。
			slog.Warn("skipping point with malformed coordinates", "name", p.Name)
			continue
		}
		coords = append(coords, [2]float64{lat, lon})
		markers = append(markers, mapdoc.Marker{
			Lat:           lat,
			Lon:           lon,
			Name:          p.Name,
			Owner:         p.OwnerName,
			Latitude:      p.Latitude,
			Longitude:     p.Longitude,
			DirectionsURL: directionsURL(p),
			Zone:          geo.CirclePolygon(lat, lon, accuracyRadiusM, accuracyVertices),
		})
	}

	doc := mapdoc.Document{Markers: markers}
	switch len(coords) {
	case 0:
		doc.Center = [2]float64{defaultCenterLat, defaultCenterLon}
		doc.Zoom = zoomDefault
	case 1:
		doc.Center = coords[0]
		doc.Zoom = zoomSingle
	default:
		lat, lon := geo.BoundingCenter(coords)
		doc.Center = [2]float64{lat, lon}
		doc.Zoom = zoomMulti
		doc.FitBounds = true
		doc.Bounds = coords
	}
	return doc
}

// directionsURL builds the /itineraire link embedded in a marker popup.
func directionsURL(p entity.PointWithOwner) string {
	q := url.Values{}
	q.Set("lat", p.Latitude)
	q.Set("lon", p.Longitude)
	q.Set("nom", p.Name)
	return "/itineraire?" + q.Encode()
}

// ShowAdd は登録フォームを表示します。
func (h *HeritageHandler) ShowAdd(c *gin.Context) {
	c.HTML(http.StatusOK, "ajouter.html", gin.H{
		"UserName": c.GetString(session.ContextUserName),
		"Flashes":  session.PopFlashes(c),
	})
}

// Add はフォーム送信からポイントを登録します。
// 座標重複はユーザー向けの検証エラー、その他のストア障害は汎用メッセージに
// 振り分けます（区別可能なエラー種別）。
func (h *HeritageHandler) Add(c *gin.Context) {
	userID := c.GetUint(session.ContextUserID)
	name := c.PostForm("nom")
	lat := c.PostForm("latitude")
	lon := c.PostForm("longitude")

	err := h.heritage.Add(c.Request.Context(), userID, name, lat, lon)
	switch {
	case err == nil:
		session.SetFlash(c, session.FlashSuccess, "Patrimoine enregistré avec succès.")
		c.Redirect(http.StatusSeeOther, "/")
	case errors.Is(err, usecase.ErrInvalidCoordinates):
		session.SetFlash(c, session.FlashError, "Coordonnées invalides.")
		c.Redirect(http.StatusSeeOther, "/ajouter")
	case errors.Is(err, usecase.ErrDuplicateCoordinates):
		session.SetFlash(c, session.FlashError, "Ces coordonnées existent déjà. Choisis un autre point.")
		c.Redirect(http.StatusSeeOther, "/ajouter")
	default:
		slog.Error("failed to insert heritage point", "error", err, "user_id", userID)
		session.SetFlash(c, session.FlashError, "Enregistrement impossible pour le moment. Réessaie plus tard.")
		c.Redirect(http.StatusSeeOther, "/ajouter")
	}
}

// Directions は選択されたポイントへの経路ページを表示します。
// 経路計算自体はブラウザ側の地図サービスに委譲します。
func (h *HeritageHandler) Directions(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	name := c.DefaultQuery("nom", "Patrimoine")

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lon, errLon := strconv.ParseFloat(lonStr, 64)
	if latStr == "" || lonStr == "" || errLat != nil || errLon != nil {
		session.SetFlash(c, session.FlashError, "Patrimoine introuvable (coordonnées manquantes).")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.HTML(http.StatusOK, "itineraire.html", gin.H{
		"UserName": c.GetString(session.ContextUserName),
		"DestLat":  lat,
		"DestLon":  lon,
		"DestName": name,
		"Flashes":  session.PopFlashes(c),
	})
}
