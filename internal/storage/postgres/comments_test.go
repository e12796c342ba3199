package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/hadge13/ya-news/internal/models"
	"github.com/hadge13/ya-news/internal/storage"
)

// Интеграционные тесты для пакета postgres (news.go + comments.go):
// — поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// — применяют миграции из ./migrations;
// — проверяют:
//    ListNews: лимит ленты (11-я, самая старая, отрезается), порядок published_at DESC;
//    CreateComment: дефолтный created_at БД и явный created_at (датированная запись),
//    ErrNewsNotFound при нарушении FK;
//    ListCommentsByNews: порядок created_at ASC, изоляция тредов разных новостей;
//    UpdateCommentContent: меняется только текст, авторство неизменно, updated_at растёт;
//    DeleteComment: удаление, ErrNotFound на повтор, каскад при удалении новости.

// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
// Используется для поиска SQL-миграций в каталоге ./migrations независимо от текущего рабочего каталога.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает PostgreSQL через testcontainers-go, применяет
// миграции и возвращает хранилище, dsn и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, string, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// применяем миграции.
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, dsn, cleanup
}

// mustSaveNews — сохраняет новость с явной датой публикации.
func mustSaveNews(t *testing.T, st *Storage, title string, publishedAt time.Time) *models.News {
	t.Helper()
	news, err := st.SaveNews(context.Background(), models.News{
		Title:       title,
		Content:     "Просто текст.",
		PublishedAt: publishedAt,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, news.ID)
	return news
}

func TestIntegration_ListNews_LimitAndOrder(t *testing.T) {
	st, _, cleanup := startPostgres(t)
	defer cleanup()

	base := time.Now().UTC().Truncate(time.Second)

	// 11 новостей: на одну больше лимита ленты; самая старая должна отрезаться.
	var oldest *models.News
	for i := 0; i < 11; i++ {
		n := mustSaveNews(t, st, fmt.Sprintf("Новость %d", i), base.Add(-time.Duration(i)*24*time.Hour))
		oldest = n
	}

	page, err := st.ListNews(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, page, 10)

	for i := 1; i < len(page); i++ {
		require.False(t, page[i].PublishedAt.After(page[i-1].PublishedAt))
	}
	for _, n := range page {
		require.NotEqual(t, oldest.ID, n.ID, "oldest item must be cut off")
	}
}

func TestIntegration_NewsByID(t *testing.T) {
	st, _, cleanup := startPostgres(t)
	defer cleanup()

	saved := mustSaveNews(t, st, "Заголовок", time.Now().UTC().Truncate(time.Second))

	got, err := st.NewsByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, saved.ID, got.ID)
	require.Equal(t, "Заголовок", got.Title)

	_, err = st.NewsByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_CreateComment_DefaultAndExplicitCreatedAt(t *testing.T) {
	st, _, cleanup := startPostgres(t)
	defer cleanup()

	news := mustSaveNews(t, st, "Заголовок", time.Now().UTC())
	authorID := uuid.New()

	// Без CreatedAt: время назначает БД.
	c1, err := st.CreateComment(context.Background(), models.Comment{
		NewsID:   news.ID,
		AuthorID: authorID,
		Author:   "Мимо Крокодил",
		Content:  "Tекст 0",
	})
	require.NoError(t, err)
	require.False(t, c1.CreatedAt.IsZero())
	require.Equal(t, authorID, c1.AuthorID)

	// Явный CreatedAt: датированная запись сохраняется как задано.
	dated := time.Now().UTC().Add(-24 * time.Hour).Truncate(time.Second)
	c2, err := st.CreateComment(context.Background(), models.Comment{
		NewsID:    news.ID,
		AuthorID:  authorID,
		Author:    "Мимо Крокодил",
		Content:   "Tекст вчерашний",
		CreatedAt: dated,
	})
	require.NoError(t, err)
	require.Equal(t, dated, c2.CreatedAt.Truncate(time.Second))
}

func TestIntegration_CreateComment_NewsMissing(t *testing.T) {
	st, _, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.CreateComment(context.Background(), models.Comment{
		NewsID:   uuid.New(),
		AuthorID: uuid.New(),
		Author:   "Мимо Крокодил",
		Content:  "ok",
	})
	require.ErrorIs(t, err, storage.ErrNewsNotFound)
}

func TestIntegration_ListCommentsByNews_OrderAndIsolation(t *testing.T) {
	st, _, cleanup := startPostgres(t)
	defer cleanup()

	news := mustSaveNews(t, st, "Заголовок", time.Now().UTC())
	other := mustSaveNews(t, st, "Другая новость", time.Now().UTC())
	authorID := uuid.New()

	// Вставляем в обратном хронологическом порядке: свежий раньше старого.
	base := time.Now().UTC().Truncate(time.Second)
	for i := 2; i >= 0; i-- {
		_, err := st.CreateComment(context.Background(), models.Comment{
			NewsID:    news.ID,
			AuthorID:  authorID,
			Author:    "Мимо Крокодил",
			Content:   fmt.Sprintf("Tекст %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	// Чужой тред не должен просочиться в выборку.
	_, err := st.CreateComment(context.Background(), models.Comment{
		NewsID:   other.ID,
		AuthorID: authorID,
		Author:   "Мимо Крокодил",
		Content:  "Чужой тред",
	})
	require.NoError(t, err)

	items, err := st.ListCommentsByNews(context.Background(), news.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Старые в начале независимо от порядка вставки.
	for i := 0; i < len(items); i++ {
		require.Equal(t, fmt.Sprintf("Tекст %d", i), items[i].Content)
	}
	for i := 1; i < len(items); i++ {
		require.True(t, items[i].CreatedAt.After(items[i-1].CreatedAt))
	}
}

func TestIntegration_UpdateCommentContent(t *testing.T) {
	st, _, cleanup := startPostgres(t)
	defer cleanup()

	news := mustSaveNews(t, st, "Заголовок", time.Now().UTC())
	authorID := uuid.New()

	created, err := st.CreateComment(context.Background(), models.Comment{
		NewsID:   news.ID,
		AuthorID: authorID,
		Author:   "Мимо Крокодил",
		Content:  "Текст комментария",
	})
	require.NoError(t, err)

	updated, err := st.UpdateCommentContent(context.Background(), created.ID, "Новый текст комментария")
	require.NoError(t, err)
	require.Equal(t, "Новый текст комментария", updated.Content)
	require.Equal(t, authorID, updated.AuthorID, "authorship must not change")
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	_, err = st.UpdateCommentContent(context.Background(), uuid.New(), "ok")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_DeleteComment_AndCascade(t *testing.T) {
	st, dsn, cleanup := startPostgres(t)
	defer cleanup()

	news := mustSaveNews(t, st, "Заголовок", time.Now().UTC())
	authorID := uuid.New()

	first, err := st.CreateComment(context.Background(), models.Comment{
		NewsID:   news.ID,
		AuthorID: authorID,
		Author:   "Мимо Крокодил",
		Content:  "Tекст 0",
	})
	require.NoError(t, err)

	second, err := st.CreateComment(context.Background(), models.Comment{
		NewsID:   news.ID,
		AuthorID: authorID,
		Author:   "Мимо Крокодил",
		Content:  "Tекст 1",
	})
	require.NoError(t, err)

	require.NoError(t, st.DeleteComment(context.Background(), first.ID))

	_, err = st.CommentByID(context.Background(), first.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	// Повторное удаление того же комментария.
	err = st.DeleteComment(context.Background(), first.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	// Каскад: удаление новости убирает её тред целиком.
	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(context.Background(), `DELETE FROM news WHERE id = $1`, news.ID)
	require.NoError(t, err)

	_, err = st.CommentByID(context.Background(), second.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	count, err := st.CountComments(context.Background())
	require.NoError(t, err)
	require.Zero(t, count)
}
