package docs

// @title           Bluelink Gateway API
// @version         1.0
// @description     Thin HTTP gateway in front of a vehicle telematics vendor. Holds one vendor session per process, caches vehicle handles in memory and exposes status, location and remote command endpoints.

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /
