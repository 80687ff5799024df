package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	model "requestly_mcp_server/internal/domain/model/requestly_rule"
	"requestly_mcp_server/internal/infra/storage"
	"requestly_mcp_server/utils"
)

const groupsPath = "/groups"

type groupRepoImpl struct {
	api storage.RequestlyAPIIface
}

var _ GroupRepositoryIface = (*groupRepoImpl)(nil)

func NewGroupRepoImpl(api storage.RequestlyAPIIface) GroupRepositoryIface {
	return &groupRepoImpl{api: api}
}

func (r *groupRepoImpl) SaveGroup(ctx context.Context, group *model.Group) (json.RawMessage, error) {
	utils.GetLogger().Infof("creating group %q", group.Name)
	return r.api.Do(ctx, &storage.APICall{
		Method: http.MethodPost,
		Path:   groupsPath,
		Body:   group,
	})
}

func (r *groupRepoImpl) ListGroupsWithPage(ctx context.Context, filter *model.GroupFilter) (json.RawMessage, error) {
	if filter == nil {
		filter = &model.GroupFilter{Offset: model.DefaultGroupOffset, PageSize: model.DefaultGroupPageSize}
	}
	query := url.Values{}
	query.Set("offset", strconv.Itoa(filter.Offset))
	query.Set("pageSize", strconv.Itoa(filter.PageSize))

	return r.api.Do(ctx, &storage.APICall{
		Method: http.MethodGet,
		Path:   groupsPath,
		Query:  query,
	})
}

// UpdateGroup sends everything but the id, which goes into the path.
func (r *groupRepoImpl) UpdateGroup(ctx context.Context, group *model.Group) (json.RawMessage, error) {
	if group.ID == "" {
		return nil, fmt.Errorf("update group %q: empty group id", group.Name)
	}
	utils.GetLogger().Infof("updating group %s", group.ID)
	return r.api.Do(ctx, &storage.APICall{
		Method: http.MethodPut,
		Path:   groupPath(group.ID),
		Body:   group,
	})
}

func (r *groupRepoImpl) DeleteGroup(ctx context.Context, groupID string) (json.RawMessage, error) {
	utils.GetLogger().Infof("deleting group %s", groupID)
	return r.api.Do(ctx, &storage.APICall{
		Method: http.MethodDelete,
		Path:   groupPath(groupID),
	})
}

func groupPath(groupID string) string {
	return groupsPath + "/" + url.PathEscape(groupID)
}
