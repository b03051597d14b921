package parsing

// JSON Schemas for the two externally produced artifacts. Validation happens
// before any field crosses into the closed data model; anything optional is
// defaulted during normalization instead of being required here.

const resumeProfileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["contact"],
  "properties": {
    "contact": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "location": {"type": "string"},
        "linkedin": {"type": "string"},
        "website": {"type": "string"}
      }
    },
    "summary": {"type": "string"},
    "experiences": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title", "company"],
        "properties": {
          "id": {"type": "string"},
          "title": {"type": "string"},
          "company": {"type": "string"},
          "location": {"type": "string"},
          "start_date": {"type": "string"},
          "end_date": {"type": "string"},
          "bullets": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title"],
        "properties": {
          "id": {"type": "string"},
          "title": {"type": "string"},
          "tech_stack": {"type": "array", "items": {"type": "string"}},
          "link": {"type": "string"},
          "bullets": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "school": {"type": "string"},
          "degree": {"type": "string"},
          "field": {"type": "string"},
          "graduation_date": {"type": "string"}
        }
      }
    },
    "skill_categories": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "skills": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "certifications": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "issuer": {"type": "string"},
          "date": {"type": "string"}
        }
      }
    }
  }
}`

const jobModelSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "role_type": {"type": "string"},
    "seniority": {"type": "string"},
    "domain": {"type": "string"},
    "primary_keywords": {"type": "array", "items": {"type": "string"}},
    "secondary_keywords": {"type": "array", "items": {"type": "string"}},
    "skill_clusters": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "category": {"type": "string"},
          "skills": {"type": "array", "items": {"type": "string"}},
          "tier": {"type": "string"}
        }
      }
    },
    "impact_themes": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "keywords": {"type": "array", "items": {"type": "string"}},
          "weight": {"type": "number"}
        }
      }
    }
  }
}`
