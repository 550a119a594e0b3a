package gpro

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("gproassist.lib.scrapers.gpro")
