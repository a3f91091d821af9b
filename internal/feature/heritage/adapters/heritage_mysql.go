// Package adapters はheritageフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"heritage_backend/internal/feature/heritage/domain/entity"
	"heritage_backend/internal/feature/heritage/usecase"
)

// heritageMySQL はPointRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type heritageMySQL struct {
	db *gorm.DB
}

// heritageMySQLがPointRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.PointRepository = (*heritageMySQL)(nil)

// NewHeritageMySQL は指定されたgorm.DB接続でheritageMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewHeritageMySQL(db *gorm.DB) *heritageMySQL {
	return &heritageMySQL{db: db}
}

// Insert はポイントをデータベースに追加します。
// UNIQUE(latitude, longitude)違反の場合、usecase.ErrDuplicateCoordinatesを返します。
// それ以外のストア障害はそのまま返し、呼び出し側で区別できるようにします。
func (r *heritageMySQL) Insert(ctx context.Context, p *entity.HeritagePoint) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		// TranslateError有効時はドライバ共通のErrDuplicatedKeyに変換される
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrDuplicateCoordinates
		}
		// MySQLエラー1062: ユニークキーの重複エントリ
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrDuplicateCoordinates
		}
		return err
	}
	return nil
}

// ListAll は全ポイントを所有者名付きで取得します。
func (r *heritageMySQL) ListAll(ctx context.Context) ([]entity.PointWithOwner, error) {
	var points []entity.PointWithOwner
	err := r.db.WithContext(ctx).
		Table("patrimoine").
		Select("patrimoine.nom_patrimoine, patrimoine.latitude, patrimoine.longitude, utilisateur.nom_utilisateur").
		Joins("JOIN utilisateur ON patrimoine.id_user = utilisateur.id_user").
		Scan(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}

// ListByUser は指定ユーザーのポイントを所有者名付きで取得します。
func (r *heritageMySQL) ListByUser(ctx context.Context, userID uint) ([]entity.PointWithOwner, error) {
	var points []entity.PointWithOwner
	err := r.db.WithContext(ctx).
		Table("patrimoine").
		Select("patrimoine.nom_patrimoine, patrimoine.latitude, patrimoine.longitude, utilisateur.nom_utilisateur").
		Joins("JOIN utilisateur ON patrimoine.id_user = utilisateur.id_user").
		Where("patrimoine.id_user = ?", userID).
		Scan(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}
