package metrics

const Namespace = "scribe"
