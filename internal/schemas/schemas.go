// Package schemas provides JSON Schema validation for the structured job
// description and resume documents the matcher consumes. The schemas are
// embedded as string constants so validation never depends on working
// directory or on schema files shipping alongside the binary.
package schemas

// JobDescriptionSchema validates the structured job description document.
const JobDescriptionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "JobDescription",
  "type": "object",
  "required": ["job_title"],
  "properties": {
    "id": {"type": "string"},
    "job_title": {"type": "string", "minLength": 1},
    "company": {"type": "string"},
    "location": {"type": "string"},
    "jd_type": {"type": "string"},
    "required_skills": {
      "type": "array",
      "items": {"type": "string"}
    },
    "preferred_skills": {
      "type": "array",
      "items": {"type": "string"}
    },
    "required_experience_years": {
      "type": ["integer", "null"],
      "minimum": 0
    },
    "education": {"type": "string"},
    "key_responsibilities": {
      "type": "array",
      "items": {"type": "string"}
    },
    "keywords_to_match": {
      "type": "array",
      "items": {"type": "string"}
    },
    "raw_text": {"type": "string"}
  }
}`

// CandidateResumeSchema validates the structured resume document.
const CandidateResumeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "CandidateResume",
  "type": "object",
  "required": ["name"],
  "properties": {
    "id": {"type": "string"},
    "file_name": {"type": "string"},
    "name": {"type": "string", "minLength": 1},
    "contact": {
      "type": "object",
      "properties": {
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "linkedin": {"type": "string"},
        "location": {"type": "string"}
      }
    },
    "tagline": {"type": "string"},
    "summary": {"type": "string"},
    "skills": {
      "type": "array",
      "items": {"type": "string"}
    },
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string"},
          "company": {"type": "string"},
          "dates": {"type": "string"},
          "bullets": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "technologies": {"type": "array", "items": {"type": "string"}},
          "bullets": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "degree": {"type": "string"},
          "school": {"type": "string"},
          "year": {"type": "string"}
        }
      }
    },
    "certifications": {
      "type": "array",
      "items": {"type": "string"}
    },
    "raw_text": {"type": "string"}
  }
}`
