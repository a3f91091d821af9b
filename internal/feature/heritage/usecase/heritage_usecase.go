// Package usecase はheritageフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strconv"

	"heritage_backend/internal/feature/heritage/domain/entity"
)

// PointRepository はポイントエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type PointRepository interface {
	// Insert は新しいポイントを永続化します。
	// 座標ペアが既に存在する場合、ErrDuplicateCoordinatesを返します。
	Insert(ctx context.Context, point *entity.HeritagePoint) error

	// ListAll は全ユーザーのポイントを所有者名付きで取得します。
	ListAll(ctx context.Context) ([]entity.PointWithOwner, error)

	// ListByUser は指定ユーザーのポイントを所有者名付きで取得します。
	ListByUser(ctx context.Context, userID uint) ([]entity.PointWithOwner, error)
}

// heritageUsecase はポイント登録・一覧のビジネスロジックを実装します。
type heritageUsecase struct {
	points PointRepository
}

// NewHeritageUsecase はheritageUsecaseの新しいインスタンスを生成します。
func NewHeritageUsecase(points PointRepository) *heritageUsecase {
	return &heritageUsecase{points: points}
}

// NormalizeCoordinate parses a decimal coordinate string and reformats it
// with exactly 6 fractional digits, so "12.3456780" and "12.345678" map to
// the same stored value and collide on the unique index.
func NormalizeCoordinate(raw string) (string, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", ErrInvalidCoordinates
	}
	return strconv.FormatFloat(v, 'f', 6, 64), nil
}

// Add は座標を6桁正規化してポイントを登録します。
// 座標重複はErrDuplicateCoordinates、その他のストア障害はラップして返します。
func (u *heritageUsecase) Add(ctx context.Context, ownerID uint, name, lat, lon string) error {
	latitude, err := NormalizeCoordinate(lat)
	if err != nil {
		return err
	}
	longitude, err := NormalizeCoordinate(lon)
	if err != nil {
		return err
	}

	point := &entity.HeritagePoint{
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
		UserID:    ownerID,
	}
	if err := u.points.Insert(ctx, point); err != nil {
		return fmt.Errorf("add heritage point: %w", err)
	}
	return nil
}

// ListForUser は指定ユーザーのポイントを取得します。
func (u *heritageUsecase) ListForUser(ctx context.Context, userID uint) ([]entity.PointWithOwner, error) {
	return u.points.ListByUser(ctx, userID)
}

// ListAll は全ポイントを取得します。
func (u *heritageUsecase) ListAll(ctx context.Context) ([]entity.PointWithOwner, error) {
	return u.points.ListAll(ctx)
}
