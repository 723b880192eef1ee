package producer

import (
	"context"
	"os"
	"strconv"
	"time"

	"atlas-characters/retry"
	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-kafka/topic"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-tenant"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const (
	HeaderTenantId     = "TENANT_ID"
	HeaderRegion       = "REGION"
	HeaderMajorVersion = "MAJOR_VERSION"
	HeaderMinorVersion = "MINOR_VERSION"
)

// Provider resolves a topic token into a message producer
type Provider func(token string) producer.MessageProducer

// ProviderImpl produces to the topic named by the token's environment variable. The tenant in ctx
// is attached to every message as a header.
func ProviderImpl(l logrus.FieldLogger) func(ctx context.Context) Provider {
	return func(ctx context.Context) Provider {
		return func(token string) producer.MessageProducer {
			return func(p model.Provider[[]kafka.Message]) error {
				t, err := topic.EnvProvider(l)(token)()
				if err != nil {
					return err
				}
				ms, err := p()
				if err != nil {
					return err
				}
				if len(ms) == 0 {
					return nil
				}

				headers := TenantHeaders(tenant.MustFromContext(ctx))
				for i := range ms {
					ms[i].Headers = append(ms[i].Headers, headers...)
				}

				w := &kafka.Writer{
					Addr:         kafka.TCP(LookupBrokers()...),
					Topic:        t,
					Balancer:     &kafka.Hash{},
					BatchTimeout: 10 * time.Millisecond,
				}
				defer func() {
					if cerr := w.Close(); cerr != nil {
						l.WithError(cerr).Warn("Unable to close kafka writer.")
					}
				}()

				return retry.Execute(retry.DefaultConfig().WithLogger(l).WithContext(ctx), func() error {
					return w.WriteMessages(ctx, ms...)
				})
			}
		}
	}
}

// TenantHeaders describes t in the headers read by the consumer tenant header parser
func TenantHeaders(t tenant.Model) []kafka.Header {
	return []kafka.Header{
		{Key: HeaderTenantId, Value: []byte(t.Id().String())},
		{Key: HeaderRegion, Value: []byte(t.Region())},
		{Key: HeaderMajorVersion, Value: []byte(strconv.Itoa(int(t.MajorVersion())))},
		{Key: HeaderMinorVersion, Value: []byte(strconv.Itoa(int(t.MinorVersion())))},
	}
}

func LookupBrokers() []string {
	return []string{os.Getenv("BOOTSTRAP_SERVERS")}
}
