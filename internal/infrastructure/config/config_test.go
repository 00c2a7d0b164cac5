package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "BID_STORE", "MYSQL_DSN", "SQLITE_PATH",
		"MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "MINIO_BUCKET", "MINIO_REGION", "MINIO_USE_SSL",
		"MINIO_EXPIRE_DAYS", "DOCUMENTS_DISABLED", "JWT_SECRET", "JWT_EXPIRE_HOURS",
		"COMPANY_RAZAO_SOCIAL", "COMPANY_CNPJ", "COMPANY_ENDERECO", "COMPANY_CIDADE",
		"MERCADOPAGO_ACCESS_TOKEN", "PAYMENT_GATEWAY_MOCK",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Store.Driver != StoreDynamoDB {
		t.Errorf("expected dynamodb store, got %s", cfg.Store.Driver)
	}
	if cfg.Minio.ExpireDays != 7 || cfg.Minio.Bucket != "documentos-disputa" {
		t.Errorf("unexpected minio defaults: %+v", cfg.Minio)
	}
	if cfg.Auth.TokenExpireHours != 12 {
		t.Errorf("expected 12h tokens, got %d", cfg.Auth.TokenExpireHours)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	content := `
server:
  port: 9090
log:
  level: debug
  format: json
store:
  driver: sqlite
  sqlite_path: /tmp/disputas.db
auth:
  jwt_secret: from-file
company:
  razao_social: "Assessoria Exemplo Ltda"
  cnpj: "12.345.678/0001-90"
  cidade: "Curitiba/PR"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PORT", "7070")
	t.Setenv("COMPANY_CIDADE", "Londrina/PR")
	t.Setenv("DOCUMENTS_DISABLED", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("env must override file port, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
	if cfg.Store.Driver != StoreSQLite || cfg.Store.SQLitePath != "/tmp/disputas.db" {
		t.Errorf("unexpected store config: %+v", cfg.Store)
	}
	if !cfg.Minio.Disabled {
		t.Errorf("documents must be disabled")
	}

	company := cfg.CompanyIdentity()
	if company.RazaoSocial != "Assessoria Exemplo Ltda" || company.Cidade != "Londrina/PR" {
		t.Errorf("unexpected company: %+v", company)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing jwt secret", map[string]string{}},
		{"unknown store", map[string]string{"JWT_SECRET": "x", "BID_STORE": "postgres"}},
		{"mysql without dsn", map[string]string{"JWT_SECRET": "x", "BID_STORE": "mysql"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(""); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "x")
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
