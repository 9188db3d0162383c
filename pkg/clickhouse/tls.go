package clickhouse

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/pkg/errors"
)

// GetTLSConfig creates a TLS config for connecting to ClickHouse over mTLS
// with the certificate, key and CA files of opts.TLSSettings.
//
// Example usage:
//
//	tlsConfig, err := GetTLSConfig(opts)
//	if err != nil {
//		return err
//	}
func GetTLSConfig(opts ClientOptions) (*tls.Config, error) {
	settings := opts.TLSSettings

	cert, err := tls.LoadX509KeyPair(settings.CertFile, settings.KeyFile)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load certfile/keyfile")
	}

	caCert, err := os.ReadFile(settings.CAFile)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load CA file")
	}

	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return nil, errors.Errorf("no certificates found in CA file: %s", settings.CAFile)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      caCertPool,
		MinVersion:   tls.VersionTLS12,
	}, nil
}
