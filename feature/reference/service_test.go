package reference

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"master-reference/core/storage/mocks"
	"master-reference/core/table"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	testSirca  = "Gcode,MS_CompanyID,MS_SecurityID,CompanyTicker,Notes\nG1,1,A,XYZ,n1\n"
	testSecRef = "CompanyId,ShareClassId,ISIN\n1,A,AU1\n"
	// ISO-8859-1 encoded: "Montréal".
	testMaster = "ISIN,Symbol,ABN,City\nAU1,XYZ,123,Montr\xe9al\n"

	testOutput = "Gcode,SR_CompanyId,SR_ShareClassId,SR_ISIN,CompanyTicker,MC_ABN,MC_City,MS_CompanyID,MS_SecurityID,Notes\r\n" +
		"G1,1,A,AU1,XYZ,123,Montréal,1,A,n1\r\n"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func writeInputs(t *testing.T, dir string) Config {
	t.Helper()
	files := map[string]string{
		"sirca.csv":  testSirca,
		"secref.csv": testSecRef,
		"master.csv": testMaster,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return Config{
		Sirca:            filepath.Join(dir, "sirca.csv"),
		SecRef:           filepath.Join(dir, "secref.csv"),
		Master:           filepath.Join(dir, "master.csv"),
		Output:           filepath.Join(dir, "out.csv"),
		FallbackEncoding: table.DefaultFallbackEncoding,
	}
}

func TestNewService(t *testing.T) {
	t.Run("UnknownEncoding", func(t *testing.T) {
		_, err := NewService(Config{FallbackEncoding: "not-a-charset"}, nil, nil, nil)
		assert.Error(t, err)
	})

	t.Run("NoFallback", func(t *testing.T) {
		s, err := NewService(Config{}, nil, nil, nil)
		require.NoError(t, err)
		assert.Nil(t, s.fallback)
	})
}

func TestService_BuildAndWriteFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfg := writeInputs(t, dir)

	core, logs := observer.New(zapcore.InfoLevel)
	s, err := NewService(cfg, nil, nil, zap.New(core))
	require.NoError(t, err)

	result, err := s.Build(ctx)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "Montréal", result.Rows[0].Get("MC_City"))

	require.NoError(t, s.Write(ctx, result))

	out, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, testOutput, string(out))

	info, err := os.Stat(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4, "no temporary files are left behind")

	assert.Equal(t, 3, logs.FilterMessage("Loaded source").Len())
	assert.Equal(t, 3, logs.FilterMessage("Join stage finished").Len())
	appended := logs.FilterMessage("Including additional SIRCA column").All()
	require.Len(t, appended, 1)
	assert.Equal(t, "Notes", appended[0].ContextMap()["column"])
}

func TestService_WriteKeepsExistingMode(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfg := writeInputs(t, dir)
	require.NoError(t, os.WriteFile(cfg.Output, []byte("stale"), 0o640))
	require.NoError(t, os.Chmod(cfg.Output, 0o640))

	s, err := NewService(cfg, nil, nil, nil)
	require.NoError(t, err)

	result, err := s.Build(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, result))

	info, err := os.Stat(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	out, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, testOutput, string(out))
}

func TestService_Undecodable(t *testing.T) {
	dir := t.TempDir()
	cfg := writeInputs(t, dir)
	cfg.FallbackEncoding = ""

	s, err := NewService(cfg, nil, nil, nil)
	require.NoError(t, err)

	_, err = s.Build(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, table.ErrUndecodable)
	assert.Contains(t, err.Error(), "master.csv")
}

func TestService_MissingFile(t *testing.T) {
	cfg := Config{Sirca: filepath.Join(t.TempDir(), "absent.csv")}
	s, err := NewService(cfg, nil, nil, nil)
	require.NoError(t, err)

	_, err = s.LoadInputs(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestService_ObjectStorage(t *testing.T) {
	ctx := context.Background()
	cfg := Config{
		Sirca:            "s3://reference/sirca.csv",
		SecRef:           "s3://reference/secref.csv",
		Master:           "s3://reference/master.csv",
		Output:           "s3://reference/out/master_company_reference.csv",
		FallbackEncoding: table.DefaultFallbackEncoding,
	}

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "reference").Return(true, nil)
	for key, content := range map[string]string{"sirca.csv": testSirca, "secref.csv": testSecRef, "master.csv": testMaster} {
		mockClient.On("GetObject", mock.Anything, "reference", key, mock.Anything).
			Return(io.NopCloser(strings.NewReader(content)), nil).Once()
	}

	var uploaded string
	mockClient.On("PutObject", mock.Anything, "reference", "out/master_company_reference.csv", mock.Anything, int64(len(testOutput)), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
		return opts.ContentType == "text/csv"
	})).Run(func(args mock.Arguments) {
		data, _ := io.ReadAll(args.Get(3).(io.Reader))
		uploaded = string(data)
	}).Return(minio.UploadInfo{}, nil)

	s, err := NewService(cfg, mockClient, nil, nil)
	require.NoError(t, err)

	result, err := s.Build(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, result))

	assert.Equal(t, testOutput, uploaded)
	mockClient.AssertExpectations(t)
}

func TestService_ObjectWithoutClient(t *testing.T) {
	s, err := NewService(Config{Sirca: "s3://reference/sirca.csv"}, nil, nil, nil)
	require.NoError(t, err)

	_, err = s.LoadInputs(context.Background())
	assert.ErrorContains(t, err, "object storage is not configured")
}

func TestService_DatabaseSource(t *testing.T) {
	dir := t.TempDir()
	cfg := writeInputs(t, dir)
	cfg.Master = "db://MasterCompany"

	db, dbMock := setupMockDB(t)
	rows := sqlmock.NewRows([]string{"ISIN", "Symbol", "ABN"}).
		AddRow("AU1", "XYZ", "123")
	dbMock.ExpectQuery("SELECT .* FROM `MasterCompany`").WillReturnRows(rows)

	s, err := NewService(cfg, nil, db, nil)
	require.NoError(t, err)

	result, err := s.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "123", result.Rows[0].Get("MC_ABN"))
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestService_TableOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := writeInputs(t, dir)
	cfg.Output = "db://master_reference"

	s, err := NewService(cfg, nil, nil, nil)
	require.NoError(t, err)

	result, err := s.Build(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, s.Write(context.Background(), result), ErrTableOutput)
}

func TestService_Locations(t *testing.T) {
	s, err := NewService(Config{
		Sirca:  "a.csv",
		SecRef: "s3://bucket/b.csv",
		Master: "db://c",
		Output: "out.csv",
	}, nil, nil, nil)
	require.NoError(t, err)

	locs, err := s.Locations()
	require.NoError(t, err)
	require.Len(t, locs, 4)
	assert.Equal(t, "s3://bucket/b.csv", locs[1].String())
	assert.Equal(t, "c", locs[2].Table)

	s.cfg.Output = ""
	_, err = s.Locations()
	assert.Error(t, err)
}
