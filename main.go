package main

import (
	"os"

	"atlas-characters/character"
	"atlas-characters/item"
	characterConsumer "atlas-characters/kafka/consumer/character"
	"atlas-characters/kafka/producer"
	"atlas-characters/logger"
	"atlas-characters/scheduler"
	"atlas-characters/service"
	"atlas-characters/tracing"
	"github.com/Chronicle20/atlas-kafka/consumer"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/joho/godotenv"
)

const serviceName = "atlas-characters"
const consumerGroupId = "Character Locomotion Service"

type Server struct {
	baseUrl string
	prefix  string
}

func (s Server) GetBaseURL() string {
	return s.baseUrl
}

func (s Server) GetPrefix() string {
	return s.prefix
}

func GetServer() Server {
	return Server{
		baseUrl: "",
		prefix:  "/api/chs/",
	}
}

func main() {
	envErr := godotenv.Load()

	l := logger.CreateLogger(serviceName)
	l.Infoln("Starting main service.")
	if envErr != nil {
		l.WithError(envErr).Debug("No .env file loaded.")
	}

	tdm := service.GetTeardownManager()

	tc, err := tracing.InitTracer(l)(serviceName)
	if err != nil {
		l.WithError(err).Fatal("Unable to initialize tracer.")
	}

	catalog, err := item.LoadCatalog(l)
	if err != nil {
		l.WithError(err).Fatal("Unable to load item catalog.")
	}
	registry := character.NewRegistry(character.ConfigFromEnv(l, catalog))

	emitter := character.NewEmitter(l, tdm.Context(), producer.ProviderImpl(l))
	emitter.Start(tdm.WaitGroup())

	frameLoop := scheduler.NewFrameLoop(l, tdm.Context(), character.TickAll(l, registry, emitter))
	frameLoop.Start()
	tdm.TeardownFunc(frameLoop.Stop)

	cm := consumer.GetManager()
	characterConsumer.InitConsumers(l)(cm.AddConsumer(l, tdm.Context(), tdm.WaitGroup()))(consumerGroupId)
	characterConsumer.InitHandlers(l, characterConsumer.NewProcessorFactory(registry))(cm.RegisterHandler)

	server.New(l).
		WithContext(tdm.Context()).
		WithWaitGroup(tdm.WaitGroup()).
		SetBasePath(GetServer().GetPrefix()).
		AddRouteInitializer(character.InitializeRoutes(registry, producer.ProviderImpl)(GetServer())).
		SetPort(os.Getenv("REST_PORT")).
		Run()

	tdm.TeardownFunc(tracing.Teardown(l)(tc))

	tdm.Wait()
	l.Infoln("Service shutdown.")
}
