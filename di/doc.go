// Package di integrates holy-diver configuration loading with Uber's Fx
// dependency injection framework.
//
// Module supplies a named *holydiver.Config to the Fx container, loaded
// lazily when the container starts:
//
//	app := fx.New(
//	    di.Module("app", "config.yaml",
//	        holydiver.WithRequiredKeys("server.port"),
//	    ),
//	    fx.Invoke(fx.Annotate(
//	        func(cfg *holydiver.Config) { ... },
//	        fx.ParamTags(`name:"app"`),
//	    )),
//	)
//
// Provider exposes the same loading pipeline as a plain constructor
// function for callers that wire dependencies by hand.
package di
