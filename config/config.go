package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	defaultContactEmail    = "gelo.designs3d@gmail.com"
	defaultCurrency        = "EUR"
	defaultCountry         = "Cyprus"
	defaultDeliveryMethod  = "ACS Cash on Delivery"
	defaultReferencePrefix = "GD"
	defaultCartKeyPrefix   = "light3d-cart"
	defaultCatalogSource   = "./data"
	defaultCatalogKey      = "products.json"
	defaultCartBucket      = "./data/carts"
	defaultPageSize        = 12
	defaultDeliveryCharge  = "3"
	defaultListingPriceMax = "200"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
	} `json:"http" yaml:"http"`

	// Postgres enables the row-backed cart store. When nil, carts are kept
	// in the blob bucket configured under cart.bucket instead.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Store identifies the shop the storefront sells for.
	Store StoreConfig `json:"store" yaml:"store"`

	// Catalog locates the static product catalog document.
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`

	// Cart configures durable cart storage.
	Cart CartConfig `json:"cart" yaml:"cart"`

	// Listing configures product listing defaults.
	Listing ListingConfig `json:"listing" yaml:"listing"`

	// Checkout configures the order-request flow.
	Checkout CheckoutConfig `json:"checkout" yaml:"checkout"`

	// PubSub configuration for analytics event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for order mailto QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig identifies the shop.
type StoreConfig struct {
	Name         string `json:"name" yaml:"name"`
	ContactEmail string `json:"contactEmail" yaml:"contactEmail"`
	Currency     string `json:"currency" yaml:"currency"`
}

// CatalogConfig locates the catalog document. Source is either a local
// directory or a blob bucket URL (file://, gs://, s3://); Key is the object
// name inside it.
type CatalogConfig struct {
	Source string `json:"source" yaml:"source"`
	Key    string `json:"key" yaml:"key"`
}

// CartConfig configures durable cart storage. KeyPrefix namespaces the
// per-session storage keys; Bucket is the blob location used when Postgres
// is not configured.
type CartConfig struct {
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
	Bucket    string `json:"bucket" yaml:"bucket"`
}

// ListingConfig configures product listing behavior.
type ListingConfig struct {
	PageSize int `json:"pageSize" yaml:"pageSize"`

	// PriceMax is the upper bound applied when a request does not supply
	// its own price range.
	PriceMax decimal.Decimal `json:"priceMax" yaml:"priceMax"`
}

// CheckoutConfig configures the order-request flow. The shop ships to a
// single country with one flat-rate cash-on-delivery method.
type CheckoutConfig struct {
	Country         string          `json:"country" yaml:"country"`
	DeliveryMethod  string          `json:"deliveryMethod" yaml:"deliveryMethod"`
	DeliveryCharge  decimal.Decimal `json:"deliveryCharge" yaml:"deliveryCharge"`
	ReferencePrefix string          `json:"referencePrefix" yaml:"referencePrefix"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: CHECKOUT_DELIVERYCHARGE -> checkout.deliveryCharge
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				stringToDecimalHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Store.ContactEmail) == "" {
		cfg.Store.ContactEmail = defaultContactEmail
	}
	if strings.TrimSpace(cfg.Store.Currency) == "" {
		cfg.Store.Currency = defaultCurrency
	}
	if strings.TrimSpace(cfg.Catalog.Source) == "" {
		cfg.Catalog.Source = defaultCatalogSource
	}
	if strings.TrimSpace(cfg.Catalog.Key) == "" {
		cfg.Catalog.Key = defaultCatalogKey
	}
	if strings.TrimSpace(cfg.Cart.KeyPrefix) == "" {
		cfg.Cart.KeyPrefix = defaultCartKeyPrefix
	}
	if strings.TrimSpace(cfg.Cart.Bucket) == "" {
		cfg.Cart.Bucket = defaultCartBucket
	}
	if cfg.Listing.PageSize <= 0 {
		cfg.Listing.PageSize = defaultPageSize
	}
	if cfg.Listing.PriceMax.IsZero() {
		cfg.Listing.PriceMax = decimal.RequireFromString(defaultListingPriceMax)
	}
	if strings.TrimSpace(cfg.Checkout.Country) == "" {
		cfg.Checkout.Country = defaultCountry
	}
	if strings.TrimSpace(cfg.Checkout.DeliveryMethod) == "" {
		cfg.Checkout.DeliveryMethod = defaultDeliveryMethod
	}
	if cfg.Checkout.DeliveryCharge.IsZero() {
		cfg.Checkout.DeliveryCharge = decimal.RequireFromString(defaultDeliveryCharge)
	}
	if strings.TrimSpace(cfg.Checkout.ReferencePrefix) == "" {
		cfg.Checkout.ReferencePrefix = defaultReferencePrefix
	}
}

// stringToDecimalHookFunc decodes YAML strings and numbers into
// decimal.Decimal so money values never pass through binary floats.
func stringToDecimalHookFunc() mapstructure.DecodeHookFunc {
	decimalType := reflect.TypeOf(decimal.Decimal{})

	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != decimalType {
			return data, nil
		}

		switch value := data.(type) {
		case string:
			return decimal.NewFromString(value)
		case int:
			return decimal.NewFromInt(int64(value)), nil
		case int64:
			return decimal.NewFromInt(value), nil
		case float64:
			return decimal.NewFromString(strconv.FormatFloat(value, 'f', -1, 64))
		default:
			return data, nil
		}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
