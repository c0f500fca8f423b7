package report

// Schema is the JSON Schema (Draft 2020-12) for WriteJSON output.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/drankou/vader-sentiment/report.schema.json",
  "title": "VADER Sentiment Report",
  "type": "object",
  "required": ["version", "results"],
  "additionalProperties": false,
  "properties": {
    "version": { "type": "string" },
    "results": {
      "type": "array",
      "items": { "$ref": "#/$defs/Result" }
    }
  },
  "$defs": {
    "Result": {
      "type": "object",
      "required": ["text", "scores", "label"],
      "additionalProperties": false,
      "properties": {
        "text": { "type": "string" },
        "scores": { "$ref": "#/$defs/Scores" },
        "label": { "enum": ["positive", "neutral", "negative"] },
        "breakdown": {
          "type": "array",
          "items": { "$ref": "#/$defs/TokenValence" }
        }
      }
    },
    "Scores": {
      "type": "object",
      "required": ["neg", "neu", "pos", "compound"],
      "additionalProperties": false,
      "properties": {
        "neg": { "type": "number", "minimum": 0, "maximum": 1 },
        "neu": { "type": "number", "minimum": 0, "maximum": 1 },
        "pos": { "type": "number", "minimum": 0, "maximum": 1 },
        "compound": { "type": "number", "minimum": -1, "maximum": 1 }
      }
    },
    "TokenValence": {
      "type": "object",
      "required": ["token", "valence"],
      "additionalProperties": false,
      "properties": {
        "token": { "type": "string" },
        "valence": { "type": "number" }
      }
    }
  }
}`
