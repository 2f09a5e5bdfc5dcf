package input

// Embedded JSON Schemas (draft-07) for the two required inputs. The six
// entity containers are required in both documents; unknown top-level or
// entity-level fields are rejected so malformed collaborator output fails
// at the boundary rather than deep inside the engine.

const specSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "required": ["project_name", "core_features", "ui_components", "api_endpoints", "data_flow", "business_rules", "security_requirements"],
  "properties": {
    "project_name": { "type": "string" },
    "core_features": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["name"],
        "properties": {
          "name": { "type": "string" },
          "description": { "type": "string" },
          "priority": { "type": "string", "enum": ["high", "medium", "low"] },
          "configurable": { "type": "boolean" },
          "implementation_approach": { "type": "string" }
        }
      }
    },
    "ui_components": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["name"],
        "properties": {
          "name": { "type": "string" },
          "description": { "type": "string" },
          "styling": { "type": "string" }
        }
      }
    },
    "api_endpoints": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["path"],
        "properties": {
          "path": { "type": "string" },
          "method": { "type": "string" },
          "description": { "type": "string" }
        }
      }
    },
    "data_flow": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["name"],
        "properties": {
          "name": { "type": "string" },
          "direction": { "type": "string" },
          "description": { "type": "string" }
        }
      }
    },
    "business_rules": { "$ref": "#/definitions/rules" },
    "security_requirements": { "$ref": "#/definitions/rules" }
  },
  "definitions": {
    "rules": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["name"],
        "properties": {
          "name": { "type": "string" },
          "description": { "type": "string" },
          "priority": { "type": "string", "enum": ["high", "medium", "low"] }
        }
      }
    }
  }
}`

const featureMapSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "required": ["project_name", "features", "ui_components", "api_endpoints", "data_flow", "business_logic", "security_features"],
  "properties": {
    "project_name": { "type": "string" },
    "features": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["name"],
        "properties": {
          "name": { "type": "string" },
          "description": { "type": "string" },
          "configurable": { "type": "boolean" },
          "implementation_type": { "type": "string" },
          "file_path": { "type": "string" }
        }
      }
    },
    "ui_components": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["name"],
        "properties": {
          "name": { "type": "string" },
          "styling": { "type": "string" },
          "file_path": { "type": "string" }
        }
      }
    },
    "api_endpoints": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["path"],
        "properties": {
          "path": { "type": "string" },
          "method": { "type": "string" },
          "file_path": { "type": "string" }
        }
      }
    },
    "data_flow": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["name"],
        "properties": {
          "name": { "type": "string" },
          "direction": { "type": "string" }
        }
      }
    },
    "business_logic": { "$ref": "#/definitions/logic" },
    "security_features": { "$ref": "#/definitions/logic" },
    "source_files": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["path", "content"],
        "properties": {
          "path": { "type": "string" },
          "content": { "type": "string" }
        }
      }
    }
  },
  "definitions": {
    "logic": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["name"],
        "properties": {
          "name": { "type": "string" },
          "description": { "type": "string" },
          "file_path": { "type": "string" }
        }
      }
    }
  }
}`
